package utils

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeLenient unmarshals data into T, tolerating sloppy JSON. When strict
// unmarshaling fails, the input is run through jsonrepair (fixing single
// quotes, unquoted keys, truncated bodies) and decoded again. Remote services
// occasionally emit such bodies on their error paths, which is exactly where
// we still want to pull out a usable message.
func DecodeLenient[T any](data []byte) (T, error) {
	var result T

	err := json.Unmarshal(data, &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
	}
	return result, nil
}
