package controllers

import (
	"encoding/json"
	"testing"
)

func TestFlexibleStringUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain string", input: `"101"`, want: "101"},
		{name: "string with spaces", input: `"  123456  "`, want: "123456"},
		{name: "integer", input: `101`, want: "101"},
		{name: "float keeps representation", input: `1.5`, want: "1.5"},
		{name: "null leaves zero value", input: `null`, want: ""},
		{name: "object rejected", input: `{"a":1}`, wantErr: true},
		{name: "array rejected", input: `[1]`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var fs FlexibleString
			err := json.Unmarshal([]byte(test.input), &fs)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", fs.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if fs.String() != test.want {
				t.Errorf("got %q, want %q", fs.String(), test.want)
			}
		})
	}
}
