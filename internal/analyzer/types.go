package analyzer

// Content type tags the analyzer may assign to a section.
const (
	TipoTelaSoftware   = "tela_software"
	TipoConfiguracao   = "configuracao"
	TipoDashboard      = "dashboard"
	TipoCodigo         = "codigo"
	TipoDiagrama       = "diagrama"
	TipoExemploPratico = "exemplo_pratico"
	TipoBoasPraticas   = "boas_praticas"
)

// Section is one analyzer-identified technical moment, anchored to a
// timestamp range and a representative frame timestamp.
type Section struct {
	Titulo          string  `json:"titulo"`
	TimestampInicio float64 `json:"timestamp_inicio"`
	TimestampFim    float64 `json:"timestamp_fim"`
	TimestampFrame  float64 `json:"timestamp_frame"`
	TipoConteudo    string  `json:"tipo_conteudo"`
	Descricao       string  `json:"descricao"`
	Citacao         string  `json:"citacao,omitempty"`
}

// Analysis is the complete structured output of the content-analysis stage.
// Section order is authoritative for document layout and is not assumed to
// be chronological.
type Analysis struct {
	Titulo      string    `json:"titulo"`
	ResumoGeral string    `json:"resumo_geral"`
	Secoes      []Section `json:"secoes"`
	Conclusao   string    `json:"conclusao"`
}

// FrameTimestamps returns each section's representative frame timestamp in
// section order.
func (a *Analysis) FrameTimestamps() []float64 {
	timestamps := make([]float64, len(a.Secoes))
	for i, secao := range a.Secoes {
		timestamps[i] = secao.TimestampFrame
	}
	return timestamps
}
