package serviceprovider

import (
	dictapimodels "advokat-site-backend/models/api/dict"
)

type Provider interface {
	Label(code string) string
	List() []dictapimodels.ServiceView
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// порядок отображения услуг на сайте
var serviceCodes = []string{
	"criminal",
	"civil",
	"family",
	"inheritance",
	"housing",
	"labor",
	"administrative",
	"arbitrage",
	"realty",
	"consultation",
}

var serviceLabels = map[string]string{
	"criminal":       "Уголовные дела",
	"civil":          "Гражданские споры",
	"family":         "Семейные споры",
	"inheritance":    "Наследственные дела",
	"housing":        "Жилищные споры",
	"labor":          "Трудовые споры",
	"administrative": "Административные дела",
	"arbitrage":      "Арбитраж и споры бизнеса",
	"realty":         "Сделки с недвижимостью",
	"consultation":   "Устная консультация",
}

// Label возвращает название услуги по коду.
// Неизвестный код возвращается как есть, чтобы заявка не терялась.
func (i impl) Label(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

func (i impl) List() []dictapimodels.ServiceView {
	result := make([]dictapimodels.ServiceView, 0, len(serviceCodes))
	for _, code := range serviceCodes {
		result = append(result, dictapimodels.ServiceView{
			Code:  code,
			Label: serviceLabels[code],
		})
	}
	return result
}
