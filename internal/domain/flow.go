package domain

// Endpoints внешнего API для потоков, фильтров и статистики.
const (
	EndpointFlowsList     = "/flows/list"
	EndpointFlowsGet      = "/flows/get"
	EndpointFlowsCreate   = "/flows/create"
	EndpointFlowsUpdate   = "/flows/update"
	EndpointFlowsDelete   = "/flows/delete"
	EndpointFiltersCreate = "/filters/create"
	EndpointFiltersUpdate = "/filters/update"
	EndpointFiltersDelete = "/filters/delete"
	EndpointStatisticsGet = "/statistics/get"
	EndpointClicksList    = "/clicks/list"
)

// FlowInput - параметры создания/изменения потока.
type FlowInput struct {
	Name                  string   `json:"name"`
	Domain                string   `json:"domain"`
	WhitePageURL          string   `json:"white_page_url"`
	OfferURL              string   `json:"offer_url"`
	Mode                  string   `json:"mode"`
	Active                *bool    `json:"active"`
	BlockBots             *bool    `json:"block_bots"`
	FilterCountries       []int64  `json:"filter_countries"`
	FilterDevices         []string `json:"filter_devices"`
	FilterOS              []string `json:"filter_os"`
	FilterBrowsers        []string `json:"filter_browsers"`
	FilterLanguages       []string `json:"filter_languages"`
	FilterConnectionTypes []string `json:"filter_connection_types"`
}

// Fields - поля запроса; пустые значения не передаются.
func (in *FlowInput) Fields() Fields {
	return NewFields().
		SetString("name", in.Name).
		SetString("domain", in.Domain).
		SetString("white_page_url", in.WhitePageURL).
		SetString("offer_url", in.OfferURL).
		SetString("mode", in.Mode).
		SetBoolPtr("active", in.Active).
		SetBoolPtr("block_bots", in.BlockBots).
		SetInts("filter_countries", in.FilterCountries).
		SetStrings("filter_devices", in.FilterDevices).
		SetStrings("filter_os", in.FilterOS).
		SetStrings("filter_browsers", in.FilterBrowsers).
		SetStrings("filter_languages", in.FilterLanguages).
		SetStrings("filter_connection_types", in.FilterConnectionTypes)
}

// FilterInput - правило фильтрации трафика внутри потока.
type FilterInput struct {
	FlowID   int64    `json:"flow_id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Values   []string `json:"values"`
	Action   string   `json:"action"`
	Priority *int64   `json:"priority"`
}

// Fields - поля запроса фильтра.
func (in *FilterInput) Fields() Fields {
	return NewFields().
		SetPositiveInt("flow_id", in.FlowID).
		SetString("name", in.Name).
		SetString("type", in.Type).
		SetStrings("values", in.Values).
		SetString("action", in.Action).
		SetIntPtr("priority", in.Priority)
}

// StatisticsQuery - выборка статистики.
type StatisticsQuery struct {
	FlowID   int64
	DateFrom string
	DateTo   string
	GroupBy  string
}

// Fields - поля запроса статистики.
func (q *StatisticsQuery) Fields() Fields {
	return NewFields().
		SetPositiveInt("flow_id", q.FlowID).
		SetString("date_from", q.DateFrom).
		SetString("date_to", q.DateTo).
		SetString("group_by", q.GroupBy)
}

// ClicksQuery - постраничная выборка кликов.
type ClicksQuery struct {
	FlowID   int64
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

// Fields - поля запроса кликов.
func (q *ClicksQuery) Fields() Fields {
	return NewFields().
		SetPositiveInt("flow_id", q.FlowID).
		SetString("date_from", q.DateFrom).
		SetString("date_to", q.DateTo).
		SetInt("limit", int64(q.Limit)).
		SetInt("offset", int64(q.Offset))
}
