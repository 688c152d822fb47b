package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/testutil"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<Settings>
  <Prefixes>
    <Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
    <Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
  </Prefixes>
  <Options>
    <Option Id="1" Name="Site" TemplateFolder="templates" OutputFolder="out" VariableFile="site.vars" SearchPattern="*.html"/>
    <Option Id="2" Name="Mail" TemplateFolder="/abs/mail" OutputFolder="mail-out" VariableFile="mail.vars" SearchPattern="*.*"/>
  </Options>
</Settings>
`

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"Options.xml":     FormatXML,
		"options.toml":    FormatTOML,
		"options.yaml":    FormatYAML,
		"options.YML":     FormatYAML,
		"Options":         FormatXML,
		"/etc/x/opts.cfg": FormatXML,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, f)

	_, err = ParseFormat("ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseXML(t *testing.T) {
	s, err := Parse([]byte(sampleXML), FormatXML)
	require.NoError(t, err)

	assert.Equal(t, placeholder.Default(), s.Delimiters)
	require.Len(t, s.Options, 2)
	assert.Equal(t, types.Option{
		ID:             "1",
		Name:           "Site",
		TemplateFolder: "templates",
		OutputFolder:   "out",
		VariableFile:   "site.vars",
		SearchPattern:  "*.html",
	}, s.Options[0])
	assert.Equal(t, "2", s.Options[1].ID)
	assert.Equal(t, "*.*", s.Options[1].SearchPattern)
}

func TestParseXMLCustomDelimiters(t *testing.T) {
	doc := `<Settings>
  <Prefixes>
    <Prefix Id="HTMLENC" Prefix="[[enc:" Postfix="]]"/>
    <Prefix Id="NORMAL" Prefix="[[" Postfix="]]"/>
    <Prefix Id="OTHER" Prefix="x" Postfix="y"/>
  </Prefixes>
</Settings>`

	s, err := Parse([]byte(doc), FormatXML)
	require.NoError(t, err)
	assert.Equal(t, "[[", s.Delimiters.Plain.Prefix)
	assert.Equal(t, "[[enc:", s.Delimiters.Encoded.Prefix)
	assert.Empty(t, s.Options)
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{
			name: "not xml",
			doc:  `<Settings Id=1></Settings>`,
			code: errors.ErrConfigParse,
		},
		{
			name: "wrong root",
			doc:  `<Config/>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "no prefixes",
			doc:  `<Settings><Options/></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "missing HTMLENC",
			doc:  `<Settings><Prefixes><Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/></Prefixes></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "missing Postfix attribute",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "duplicate prefix entry",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
<Prefix Id="NORMAL" Prefix="((" Postfix="))"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "empty prefix",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="" Postfix="}}"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "option missing SearchPattern",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes><Options>
<Option Id="1" Name="a" TemplateFolder="t" OutputFolder="o" VariableFile="v"/>
</Options></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "duplicate option ids",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes><Options>
<Option Id="1" Name="a" TemplateFolder="t" OutputFolder="o" VariableFile="v" SearchPattern="*"/>
<Option Id="1" Name="b" TemplateFolder="t" OutputFolder="o" VariableFile="v" SearchPattern="*"/>
</Options></Settings>`,
			code: errors.ErrConfigValid,
		},
		{
			name: "reserved cancel id",
			doc: `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes><Options>
<Option Id="c" Name="a" TemplateFolder="t" OutputFolder="o" VariableFile="v" SearchPattern="*"/>
</Options></Settings>`,
			code: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc), FormatXML)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestMissingAttributeNamesOption(t *testing.T) {
	doc := `<Settings><Prefixes>
<Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
<Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
</Prefixes><Options>
<Option Id="7" Name="a" OutputFolder="o" VariableFile="v" SearchPattern="*"/>
</Options></Settings>`

	_, err := Parse([]byte(doc), FormatXML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `option "7" is missing the TemplateFolder attribute`)
	assert.Equal(t, "TemplateFolder", errors.GetErrorDetails(err)["attribute"])
}

func TestParseTOML(t *testing.T) {
	doc := `
[prefixes.normal]
prefix = "{{"
postfix = "}}"

[prefixes.htmlenc]
prefix = "{{{"
postfix = "}}}"

[[options]]
id = 1
name = "Site"
template_folder = "templates"
output_folder = "out"
variable_file = "site.vars"
search_pattern = "*.html"
`
	s, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, placeholder.Default(), s.Delimiters)
	require.Len(t, s.Options, 1)
	assert.Equal(t, "1", s.Options[0].ID)
	assert.Equal(t, "templates", s.Options[0].TemplateFolder)
}

func TestParseYAML(t *testing.T) {
	doc := `
prefixes:
  normal:
    prefix: "{{"
    postfix: "}}"
  htmlenc:
    prefix: "{{{"
    postfix: "}}}"
options:
  - id: site
    name: Site
    template_folder: templates
    output_folder: out
    variable_file: site.vars
    search_pattern: "*.html"
`
	s, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, s.Options, 1)
	assert.Equal(t, "site", s.Options[0].ID)
	assert.Equal(t, "*.html", s.Options[0].SearchPattern)
}

func TestParseKoanfErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		code   errors.ErrorCode
	}{
		{"bad toml", FormatTOML, "[prefixes\n", errors.ErrConfigParse},
		{"missing htmlenc", FormatTOML, "[prefixes.normal]\nprefix = \"{{\"\npostfix = \"}}\"\n", errors.ErrConfigValid},
		{"missing postfix", FormatYAML, "prefixes:\n  normal:\n    prefix: a\n  htmlenc:\n    prefix: b\n    postfix: c\n", errors.ErrConfigValid},
		{"missing option key", FormatYAML, `prefixes:
  normal: {prefix: "{{", postfix: "}}"}
  htmlenc: {prefix: "{{{", postfix: "}}}"}
options:
  - id: "1"
    name: a
`, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	path := ws.Write("conf/Options.xml", sampleXML)

	s, err := Load(ws.FS, path)
	require.NoError(t, err)

	assert.Equal(t, path, s.Path)
	assert.Equal(t, "/work/conf/templates", s.Options[0].TemplateFolder)
	assert.Equal(t, "/work/conf/out", s.Options[0].OutputFolder)
	assert.Equal(t, "/work/conf/site.vars", s.Options[0].VariableFile)
	assert.Equal(t, "/abs/mail", s.Options[1].TemplateFolder)
	assert.Equal(t, "*.*", s.Options[1].SearchPattern)
}

func TestLoadMissingFile(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)

	_, err := Load(ws.FS, ws.Path("nope.xml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidAddsPath(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	path := ws.Write("Options.xml", "<Settings/>")

	_, err := Load(ws.FS, path)
	require.Error(t, err)
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestSettingsOption(t *testing.T) {
	s, err := Parse([]byte(sampleXML), FormatXML)
	require.NoError(t, err)

	opt, err := s.Option("2")
	require.NoError(t, err)
	assert.Equal(t, "Mail", opt.Name)

	_, err = s.Option("9")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOptionNotFound))
}
