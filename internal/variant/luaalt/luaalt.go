package luaalt

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/drafter/internal/variant"
)

// entryFunc is the global the script must define.
const entryFunc = "alternatives"

// Provider runs a Lua script to produce phrase alternatives.
type Provider struct {
	path   string
	source string
}

// New returns a provider backed by a script file.
func New(path string) *Provider {
	return &Provider{path: path}
}

// NewFromSource returns a provider backed by inline script source.
func NewFromSource(source string) *Provider {
	return &Provider{source: source}
}

// Alternatives evaluates the script once per paragraph and collects its
// suggestions. Paragraphs for which the script returns nil or an empty
// table are omitted from the result.
func (p *Provider) Alternatives(paragraphs []string) (map[int][]variant.Alternative, error) {
	L := lua.NewState()
	defer L.Close()

	var err error
	if p.path != "" {
		err = L.DoFile(p.path)
	} else {
		err = L.DoString(p.source)
	}
	if err != nil {
		return nil, fmt.Errorf("load alternatives script: %w", err)
	}

	fn := L.GetGlobal(entryFunc)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("alternatives script does not define function %q", entryFunc)
	}

	out := make(map[int][]variant.Alternative)
	for i, para := range paragraphs {
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
			lua.LNumber(i), lua.LString(para)); err != nil {
			return nil, fmt.Errorf("alternatives(%d): %w", i, err)
		}
		ret := L.Get(-1)
		L.Pop(1)

		list, err := convertReturn(i, ret)
		if err != nil {
			return nil, err
		}
		if len(list) > 0 {
			out[i] = list
		}
	}
	return out, nil
}

// convertReturn converts the script's return value for one paragraph.
func convertReturn(idx int, ret lua.LValue) ([]variant.Alternative, error) {
	switch v := ret.(type) {
	case *lua.LNilType:
		return nil, nil
	case *lua.LTable:
		var list []variant.Alternative
		var convErr error
		v.ForEach(func(_, item lua.LValue) {
			if convErr != nil {
				return
			}
			entry, ok := item.(*lua.LTable)
			if !ok {
				convErr = fmt.Errorf("alternatives(%d): entry is not a table", idx)
				return
			}
			orig := entry.RawGetString("original")
			alt := entry.RawGetString("alternative")
			if orig.Type() != lua.LTString || alt.Type() != lua.LTString {
				convErr = fmt.Errorf("alternatives(%d): entry needs string original and alternative", idx)
				return
			}
			list = append(list, variant.Alternative{
				Original:    lua.LVAsString(orig),
				Alternative: lua.LVAsString(alt),
			})
		})
		return list, convErr
	default:
		return nil, fmt.Errorf("alternatives(%d): returned %s, want table or nil", idx, ret.Type())
	}
}
