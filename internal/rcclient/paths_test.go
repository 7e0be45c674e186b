package rcclient

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeExtendedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`//?/C:/a`, `C:/a`},
		{`\\?\D:\b`, `D:\b`},
		{`\\?\D:/b`, `D:/b`},
		{`//?/`, ``},
		{`C:/x`, `C:/x`},
		{`/home/user`, `/home/user`},
		{`remote:bucket`, `remote:bucket`},
		{`//?`, `//?`},
		{`/?/C:/a`, `/?/C:/a`},
		{`x//?/C:/a`, `x//?/C:/a`},
		{``, ``},
	}

	for _, tt := range tests {
		if got := NormalizeExtendedPath(tt.in); got != tt.want {
			t.Errorf("NormalizeExtendedPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTransferPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "both prefixes stripped",
			in:   `{"transferred":[{"srcFs":"//?/C:/a","dstFs":"\\\\?\\D:/b"}]}`,
			want: `{"transferred":[{"dstFs":"D:/b","srcFs":"C:/a"}]}`,
		},
		{
			name: "no prefix passes through",
			in:   `{"transferred":[{"srcFs":"C:/x","dstFs":"/mnt/y"}]}`,
			want: `{"transferred":[{"dstFs":"/mnt/y","srcFs":"C:/x"}]}`,
		},
		{
			name: "non-string fields untouched",
			in:   `{"transferred":[{"srcFs":5,"dstFs":null}]}`,
			want: `{"transferred":[{"dstFs":null,"srcFs":5}]}`,
		},
		{
			name: "missing fields untouched",
			in:   `{"transferred":[{},{"name":"a.txt","dstFs":"//?/E:/c"}]}`,
			want: `{"transferred":[{},{"dstFs":"E:/c","name":"a.txt"}]}`,
		},
		{
			name: "non-object elements skipped",
			in:   `{"transferred":["//?/C:/a",7,null,[],{"srcFs":"//?/C:/a"}]}`,
			want: `{"transferred":["//?/C:/a",7,null,[],{"srcFs":"C:/a"}]}`,
		},
		{
			name: "other fields untouched",
			in:   `{"transferred":[{"name":"//?/C:/a","srcFs":"//?/C:/a"}]}`,
			want: `{"transferred":[{"name":"//?/C:/a","srcFs":"C:/a"}]}`,
		},
		{
			name: "transferred missing",
			in:   `{"bytes":1}`,
			want: `{"bytes":1}`,
		},
		{
			name: "transferred is an object",
			in:   `{"transferred":{"srcFs":"//?/C:/a"}}`,
			want: `{"transferred":{"srcFs":"//?/C:/a"}}`,
		},
		{
			name: "transferred is null",
			in:   `{"transferred":null}`,
			want: `{"transferred":null}`,
		},
		{
			name: "empty array",
			in:   `{"transferred":[]}`,
			want: `{"transferred":[]}`,
		},
		{
			name: "top level array",
			in:   `[{"srcFs":"//?/C:/a"}]`,
			want: `[{"srcFs":"//?/C:/a"}]`,
		},
		{
			name: "top level string",
			in:   `"//?/C:/a"`,
			want: `"//?/C:/a"`,
		},
		{
			name: "large numbers kept",
			in:   `{"transferred":[{"size":9007199254740993,"srcFs":"//?/C:/a"}]}`,
			want: `{"transferred":[{"size":9007199254740993,"srcFs":"C:/a"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeDocument([]byte(tt.in))
			if err != nil {
				t.Fatalf("decode input: %v", err)
			}

			got, err := json.Marshal(NormalizeTransferPaths(doc))
			if err != nil {
				t.Fatalf("encode result: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizeTransferPaths_Nil(t *testing.T) {
	if got := NormalizeTransferPaths(nil); got != nil {
		t.Errorf("NormalizeTransferPaths(nil) = %v, want nil", got)
	}
}

func TestDecodeDocument(t *testing.T) {
	valid := []struct {
		in   string
		want any
	}{
		{`{}`, map[string]any{}},
		{` {"a":1} `, map[string]any{"a": json.Number("1")}},
		{"{\"a\":1}\n", map[string]any{"a": json.Number("1")}},
		{`null`, nil},
		{`[1,"x"]`, []any{json.Number("1"), "x"}},
	}
	for _, tt := range valid {
		got, err := decodeDocument([]byte(tt.in))
		if err != nil {
			t.Errorf("decodeDocument(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("decodeDocument(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	invalid := []string{"", "   ", "not json", `{"a":`, "{} junk", "{}}", "{} {}", "1 2"}
	for _, in := range invalid {
		if _, err := decodeDocument([]byte(in)); err == nil {
			t.Errorf("decodeDocument(%q) should fail", in)
		}
	}
}
