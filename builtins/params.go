//-----------------------------------------------------------------------------
// Parsing of the `define`/`defmacro` parameter-list syntax: a name followed
// by zero or more required labels, an optional `&optional` run, and an
// optional trailing `&rest name`.
//
// Grounded on the original Rust source's define_parse_params
// (original_source/src/builtins.rs), adapted to return scib.Parameters
// directly instead of a bespoke struct.
//-----------------------------------------------------------------------------

package builtins

import "github.com/czipperz/scib"

const (
	optionalMarker = "&optional"
	restMarker     = "&rest"
)

// parseHead splits a define/defmacro head list of the form
// `(name p1 p2 &optional o1 o2 &rest r)` into the bound name and its
// Parameters. Every element past the name must be a Label.
func parseHead(head scib.List) (scib.Label, scib.Parameters, error) {
	if len(head) == 0 {
		return "", scib.Parameters{}, scib.NewError(scib.InvalidInput, "define", "a name is required")
	}
	name, ok := scib.GetLabel(head[0])
	if !ok {
		return "", scib.Parameters{}, scib.NewValueError(scib.InvalidInput, "define", head[0], "definition name must be a label")
	}

	var params scib.Parameters
	rest := head[1:]
	i := 0
	for i < len(rest) {
		label, ok := scib.GetLabel(rest[i])
		if !ok {
			return "", scib.Parameters{}, scib.NewValueError(scib.InvalidInput, "define", rest[i], "parameter must be a label")
		}
		switch label.Name() {
		case optionalMarker:
			i++
			optCountBefore := len(params.Optional)
			for i < len(rest) {
				label, ok := scib.GetLabel(rest[i])
				if !ok {
					return "", scib.Parameters{}, scib.NewValueError(scib.InvalidInput, "define", rest[i], "parameter must be a label")
				}
				if label.Name() == restMarker {
					restName, err := readRestName(rest, &i)
					if err != nil {
						return "", scib.Parameters{}, err
					}
					params.Rest, params.HasRest = restName, true
					break
				}
				params.Optional = append(params.Optional, label)
				i++
			}
			if len(params.Optional) == optCountBefore {
				return "", scib.Parameters{}, scib.NewError(scib.InvalidInput, "define", "no optional arguments given after &optional")
			}
			return name, params, nil
		case restMarker:
			restName, err := readRestName(rest, &i)
			if err != nil {
				return "", scib.Parameters{}, err
			}
			params.Rest, params.HasRest = restName, true
			return name, params, nil
		default:
			params.Required = append(params.Required, label)
			i++
		}
	}
	return name, params, nil
}

// readRestName consumes "&rest name" starting at *i (which points at the
// "&rest" label itself) and verifies nothing follows it.
func readRestName(items scib.List, i *int) (scib.Label, error) {
	*i++
	if *i >= len(items) {
		return "", scib.NewError(scib.InvalidInput, "define", "&rest must be named")
	}
	name, ok := scib.GetLabel(items[*i])
	if !ok {
		return "", scib.NewValueError(scib.InvalidInput, "define", items[*i], "&rest parameter must be a label")
	}
	*i++
	if *i < len(items) {
		return "", scib.NewError(scib.InvalidInput, "define", "&rest cannot be followed by further parameters")
	}
	return name, nil
}
