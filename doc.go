// Package relaxed provides:
//
// - Fault-tolerant typed extraction from parsed JSON/YAML document trees
// - A four-state result carrier Maybe[T] distinguishing absent, exact-type,
//   coerced and unreadable values
// - Best-effort coercion between scalar kinds ("42" -> 42, true -> 1) with a
//   fixed rule table instead of hard failure
// - A recursive conversion protocol (Converter/Unmarshaler) so nested user
//   structures can be built from the same accessors
//
// Design policy:
// - Keep only public APIs in the root package; put driver implementations
//   under internal/ and source/.
// - Place converter constructors under convert/ and per-format sources under
//   source/json and source/yaml.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := relaxed.ParseBytes(data)
//	port := v.MaybeInt(relaxed.Field("port")).Default(8080)
//	name := v.MaybeString(relaxed.Field("name")).Relaxed()
//
//	ids := relaxed.MaybeArray(v, relaxed.Field("ids"), convert.Int64()).Relaxed()
package relaxed
