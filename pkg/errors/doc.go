// Package errors provides structured error types for better observability
// and programmatic error handling across the module.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidRepresentation,
//	    "no label registered for value",
//	    map[string]interface{}{
//	        "type":  "Color",
//	        "value": 7,
//	        "range": "[0, 3)",
//	    },
//	)
package errors
