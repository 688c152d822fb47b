package settings

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

func parseXML(data []byte) (*Settings, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "settings document is not well-formed XML")
	}

	root := doc.SelectElement("Settings")
	if root == nil {
		return nil, errors.New(errors.ErrConfigValid, "settings document has no Settings root element")
	}

	delims, err := xmlDelimiters(root.SelectElement("Prefixes"))
	if err != nil {
		return nil, err
	}

	s := &Settings{Delimiters: delims}
	if options := root.SelectElement("Options"); options != nil {
		for i, el := range options.SelectElements("Option") {
			opt, err := xmlOption(i, el)
			if err != nil {
				return nil, err
			}
			s.Options = append(s.Options, opt)
		}
	}
	return s, nil
}

func xmlDelimiters(prefixes *etree.Element) (placeholder.Delimiters, error) {
	var d placeholder.Delimiters
	if prefixes == nil {
		return d, errors.New(errors.ErrConfigValid, "settings document has no Prefixes element")
	}

	found := map[string]placeholder.Delimiter{}
	for _, el := range prefixes.SelectElements("Prefix") {
		id := el.SelectAttrValue("Id", "")
		if id != placeholder.PlainID && id != placeholder.EncodedID {
			continue
		}
		if _, dup := found[id]; dup {
			return d, errors.Newf(errors.ErrConfigValid, "more than one %s prefix entry", id).
				WithDetail("prefix_id", id)
		}
		var delim placeholder.Delimiter
		for _, attr := range []string{"Prefix", "Postfix"} {
			a := el.SelectAttr(attr)
			if a == nil {
				return d, errors.Newf(errors.ErrConfigValid, "%s prefix entry is missing the %s attribute", id, attr).
					WithDetail("prefix_id", id)
			}
			if attr == "Prefix" {
				delim.Prefix = a.Value
			} else {
				delim.Postfix = a.Value
			}
		}
		found[id] = delim
	}

	for _, id := range []string{placeholder.PlainID, placeholder.EncodedID} {
		if _, ok := found[id]; !ok {
			return d, errors.Newf(errors.ErrConfigValid, "missing %s prefix entry", id).
				WithDetail("prefix_id", id)
		}
	}
	d.Plain = found[placeholder.PlainID]
	d.Encoded = found[placeholder.EncodedID]
	return d, nil
}

func xmlOption(index int, el *etree.Element) (types.Option, error) {
	values := make(map[string]string, len(optionAttributes))
	for _, name := range optionAttributes {
		a := el.SelectAttr(name)
		if a == nil {
			return types.Option{}, missingAttribute(index, el.SelectAttrValue("Id", ""), name)
		}
		values[name] = a.Value
	}
	return types.Option{
		ID:             values["Id"],
		Name:           values["Name"],
		TemplateFolder: values["TemplateFolder"],
		OutputFolder:   values["OutputFolder"],
		VariableFile:   values["VariableFile"],
		SearchPattern:  values["SearchPattern"],
	}, nil
}

func xmlDocument(s *Settings) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("Settings")
	prefixes := root.CreateElement("Prefixes")
	for _, style := range []placeholder.Style{placeholder.Plain, placeholder.Encoded} {
		d := s.Delimiters.Get(style)
		el := prefixes.CreateElement("Prefix")
		el.CreateAttr("Id", style.String())
		el.CreateAttr("Prefix", d.Prefix)
		el.CreateAttr("Postfix", d.Postfix)
	}

	options := root.CreateElement("Options")
	for _, opt := range s.Options {
		el := options.CreateElement("Option")
		el.CreateAttr("Id", opt.ID)
		el.CreateAttr("Name", opt.Name)
		el.CreateAttr("TemplateFolder", opt.TemplateFolder)
		el.CreateAttr("OutputFolder", opt.OutputFolder)
		el.CreateAttr("VariableFile", opt.VariableFile)
		el.CreateAttr("SearchPattern", opt.SearchPattern)
	}

	doc.Indent(2)
	return doc
}
