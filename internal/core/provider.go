package core

import (
	"strings"

	"content-templates/internal/shared"
	"content-templates/internal/types"
)

const ContentTypeMenu = "menu"

// menuSections maps menu types to the section rendered for them.
var menuSections = map[string]string{
	"0":                   "SelectedPages",
	"1":                   "SubPagesOfSelectedPages",
	"4":                   "SubPagesOfSelectedPagesWithAbstract",
	"7":                   "SubPagesOfSelectedPagesWithSections",
	"2":                   "SiteMap",
	"8":                   "SiteMapsOfSelectedPages",
	"3":                   "SectionIndex",
	"5":                   "RecentlyUpdated",
	"6":                   "RelatedPages",
	"categorized_pages":   "CategorizedPages",
	"categorized_content": "CategorizedContent",
}

type Provider struct {
	Config types.ProviderConfig
}

func NewProvider(config types.ProviderConfig) Provider {
	return Provider{Config: config}
}

// Triggers reports whether the provider handles the given table and
// field. An empty field means the whole record.
func (p Provider) Triggers(table string, field string) bool {
	return table == p.Config.Table && (field == "" || field == p.Config.Field)
}

// MenuSectionName looks up the section rendered for a menu type.
func MenuSectionName(menuType string) (string, bool) {
	name, ok := menuSections[strings.TrimSpace(menuType)]
	return name, ok
}

// ControllerAction is the action name derived from the record's type.
func ControllerAction(record types.Record) string {
	return strings.ToLower(record.Type)
}

// TemplateVariables assembles the variables passed to the template of a
// record. Menu records also get the partial to render and the selected
// page uids.
func TemplateVariables(record types.Record, settings map[string]any) map[string]any {
	variables := map[string]any{
		"settings": settings,
	}
	if record.Type != ContentTypeMenu {
		return variables
	}
	section, _ := MenuSectionName(record.Field(types.FieldMenu))
	variables["menuPartialTemplateName"] = section
	pageUids := shared.SplitList(record.Field(types.FieldPages))
	if pageUids == nil {
		pageUids = []string{}
	}
	variables["pageUids"] = pageUids
	return variables
}
