package report

import (
	"encoding"
	"fmt"
	"io"

	"github.com/sirkon/convlint/internal/runner"
)

// Format represents the supported report renderings.
type Format int

const (
	formatInvalid Format = iota

	FormatText
	FormatJSON
)

var formatValueMap = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
}

func (f Format) String() string {
	v, ok := formatValueMap[f]
	if !ok {
		return fmt.Sprintf("format-invalid(%d)", f)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Format)(nil)

func (f *Format) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown report format %q", text)
}

func (f Format) MarshalText() ([]byte, error) {
	v, ok := formatValueMap[f]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Format(%d)", f)
	}

	return []byte(v), nil
}

// Render writes the result in the requested format.
func Render(w io.Writer, format Format, res *runner.Result) error {
	switch format {
	case FormatText:
		return renderText(w, res)
	case FormatJSON:
		return renderJSON(w, res)
	default:
		return fmt.Errorf("cannot render invalid format(%d)", format)
	}
}
