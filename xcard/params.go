package xcard

import (
	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/util"
)

const (
	elemVCards     = "vcards"
	elemVCard      = "vcard"
	elemGroup      = "group"
	elemParameters = "parameters"
)

// paramType returns the data type of parameter values.
func paramType(name string) vcard.DataType {
	switch util.UCase(name) {
	case vcard.ParamPref, vcard.ParamIndex:
		return vcard.DataTypeInteger
	case vcard.ParamTZ, vcard.ParamGeo:
		return vcard.DataTypeURI
	default:
		return vcard.DataTypeText
	}
}

func paramsElement(params vcard.Params) *vcard.XElement {
	el := &vcard.XElement{Name: elemParameters}
	for _, p := range params {
		pe := &vcard.XElement{Name: util.LCase(p.Name)}
		dt := string(paramType(p.Name))
		for _, v := range p.Values {
			pe.Append(vcard.NewXElement(dt, v))
		}
		el.Append(pe)
	}
	return el
}

// parseParamsElement reads a <parameters> element.
// A parameter without value elements takes its own text as the value.
func parseParamsElement(el *vcard.XElement) vcard.Params {
	if el == nil {
		return nil
	}
	var params vcard.Params
	for _, pe := range el.Children {
		name := util.UCase(pe.Name)
		if len(pe.Children) == 0 {
			params.Append(name, util.TrimSP(pe.Text))
			continue
		}
		for _, ve := range pe.Children {
			params.Append(name, ve.Text)
		}
	}
	return params
}
