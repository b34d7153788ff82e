package dictapimodels

type ServiceView struct {
	Code  string `json:"code"`  // Внутренний код услуги
	Label string `json:"label"` // Название услуги
}
