// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, `[]`},
		{"scenario A", []string{"cat", "dog", "cat"}, `[{"word":"cat","count":2},{"word":"dog","count":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := buildTree(t, tt.words...)

			data, err := json.Marshal(tree)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal = %s, want %s", data, tt.want)
			}

			// round trip into the list type
			var got []WordCount
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tree.DumpList(), got); diff != "" {
				t.Errorf("DumpList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
