package mcp

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ArgumentGetter is satisfied by mcp.CallToolRequest.
type ArgumentGetter interface {
	GetArguments() map[string]any
}

// extractArgs are the classmap_extract parameters.
type extractArgs struct {
	Path       string   `json:"path"`
	Categories []string `json:"categories"`
	Scope      string   `json:"scope"`
	Format     string   `json:"format"`
}

// bindArguments decodes request arguments into target using json tags.
// Clients may send arrays as JSON-encoded strings or comma separated lists;
// both are accepted.
func bindArguments[T any](request ArgumentGetter, target *T) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonStringHook,
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(request.GetArguments())
}

// jsonStringHook turns a string holding a JSON array into a slice.
func jsonStringHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}

	raw := strings.TrimSpace(data.(string))
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return data, nil
	}

	slicePtr := reflect.New(to)
	if err := json.Unmarshal([]byte(raw), slicePtr.Interface()); err != nil {
		return data, nil
	}
	return slicePtr.Elem().Interface(), nil
}
