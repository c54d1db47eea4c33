package messaging

import (
	"encoding/json"
	"fmt"

	"automfg/internal/core/domain/model/kernel"

	"github.com/mitchellh/mapstructure"
)

// decodePayload fills target from a notification payload. Field names follow
// the json tags of the event structs.
func decodePayload(payload []byte, target any) error {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("payload is not a JSON object: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// uuidField parses a required id taken from a payload.
func uuidField(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("payload field %s: %w", name, err)
	}
	return id, nil
}
