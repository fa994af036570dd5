package generator

// DecodeStrategy identifies how the generated client deserializes the
// dispatched call's result back into the declared return type.
type DecodeStrategy int

const (
	// DecodeGeneric deserializes through serde_wasm_bindgen::from_value
	DecodeGeneric DecodeStrategy = iota
	// DecodeString extracts the result with the as_string accessor
	DecodeString
	// DecodeUnit ignores the result and always succeeds with ()
	DecodeUnit
	// DecodeBool extracts the result with the as_bool accessor
	DecodeBool
	// DecodeNumber deserializes like DecodeGeneric but reports a
	// number-specific failure message
	DecodeNumber
)

// String returns the strategy name for diagnostics
func (s DecodeStrategy) String() string {
	switch s {
	case DecodeString:
		return "string"
	case DecodeUnit:
		return "unit"
	case DecodeBool:
		return "bool"
	case DecodeNumber:
		return "number"
	default:
		return "generic"
	}
}

// numericIdentities is the closed set of return type spellings routed to the
// number-specific deserialization message.
var numericIdentities = map[string]struct{}{
	"i32": {}, "i64": {}, "u32": {}, "u64": {},
	"f32": {}, "f64": {}, "isize": {}, "usize": {},
}

// SelectDecode picks the decode strategy for a return type's normalized
// textual identity. The dispatch is deliberately textual, not semantic: a
// user-defined type that happens to be spelled "String" or "bool" is routed
// to the accessor path and will fail at call time. Reclassifying such types
// would silently change the generated output for existing crates.
func SelectDecode(identity string) DecodeStrategy {
	switch identity {
	case "String":
		return DecodeString
	case "()":
		return DecodeUnit
	case "bool":
		return DecodeBool
	}
	if _, ok := numericIdentities[identity]; ok {
		return DecodeNumber
	}
	return DecodeGeneric
}

// DecodeExpr returns the Rust expression that applies the strategy to the
// `result` binding, producing a Result<T, String>.
func (s DecodeStrategy) DecodeExpr() string {
	switch s {
	case DecodeString:
		return `result.as_string().ok_or_else(|| "Expected string response".to_string())`
	case DecodeUnit:
		return `Ok(())`
	case DecodeBool:
		return `result.as_bool().ok_or_else(|| "Expected bool response".to_string())`
	case DecodeNumber:
		return `serde_wasm_bindgen::from_value(result).map_err(|e| format!("Failed to deserialize number: {}", e))`
	default:
		return `serde_wasm_bindgen::from_value(result).map_err(|e| format!("Failed to deserialize response: {}", e))`
	}
}
