// Package settings loads and generates the settings document that drives
// tmplfill.
//
// A settings document declares the two delimiter styles and the options an
// operator can run. The canonical form is XML:
//
//	<Settings>
//	  <Prefixes>
//	    <Prefix Id="NORMAL" Prefix="{{" Postfix="}}"/>
//	    <Prefix Id="HTMLENC" Prefix="{{{" Postfix="}}}"/>
//	  </Prefixes>
//	  <Options>
//	    <Option Id="1" Name="Site" TemplateFolder="templates" OutputFolder="out"
//	            VariableFile="site.vars" SearchPattern="*.html"/>
//	  </Options>
//	</Settings>
//
// TOML and YAML documents carry the same data under lower-case keys
// (prefixes.normal.prefix, options[].template_folder, ...). The format is
// picked from the file extension; anything that is not .toml, .yaml or .yml
// is read as XML.
//
// Every problem with a document is reported as a configuration error
// (CONFIG_LOAD, CONFIG_PARSE or CONFIG_INVALID) before any option runs.
package settings
