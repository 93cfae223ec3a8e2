package models

// DashboardSummary holds the aggregate counts shown on the dashboard. It is
// recomputed from the full set of stored entregadores on every request.
type DashboardSummary struct {
	TotalEntregadores   int `json:"total_entregadores"`
	TotalCidades        int `json:"total_cidades"`
	TotalModalMoto      int `json:"total_modal_moto"`
	TotalModalBicicleta int `json:"total_modal_bicicleta"`

	// Grouped counts keyed by the exact stored string value. Modal keys are
	// deliberately not case-folded even though the two named totals above
	// match "Moto" and "Bicicleta" case-insensitively.
	PorNacionalidade map[string]int `json:"por_nacionalidade"`
	PorEstadoCivil   map[string]int `json:"por_estado_civil"`
	PorTipoChavePix  map[string]int `json:"por_tipo_chave_pix"`
	PorCidade        map[string]int `json:"por_cidade"`
	PorModal         map[string]int `json:"por_modal"`
}

// NewDashboardSummary creates a summary with zero totals and empty groupings
func NewDashboardSummary() *DashboardSummary {
	return &DashboardSummary{
		PorNacionalidade: map[string]int{},
		PorEstadoCivil:   map[string]int{},
		PorTipoChavePix:  map[string]int{},
		PorCidade:        map[string]int{},
		PorModal:         map[string]int{},
	}
}
