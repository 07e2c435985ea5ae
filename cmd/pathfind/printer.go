package main

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// emit writes v to w in the --output format.
func emit(w io.Writer, v any) {
	switch *output {
	case "json":
		_ = json.NewEncoder(w).Encode(v)
	case "json-pretty":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		_ = e.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			panic(err)
		}
		_, _ = w.Write(b)
	default:
		panic(fmt.Errorf("invalid output format: %v", *output))
	}
}
