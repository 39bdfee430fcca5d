package analyzer

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

const analysisPrompt = `Analise a seguinte transcrição de um vídeo técnico/tutorial e extraia APENAS o conteúdo técnico relevante.

TRANSCRIÇÃO COMPLETA:
%s

SEGMENTOS COM TIMESTAMPS:
%s

INSTRUÇÕES CRÍTICAS:

1. IGNORE COMPLETAMENTE:
   - Apresentações pessoais, saudações, boas-vindas
   - Agradecimentos, despedidas e introduções genéricas
   - Qualquer conteúdo que não seja técnico/prático

2. FOQUE EXCLUSIVAMENTE EM:
   - Demonstrações práticas de software/ferramentas
   - Configurações sendo aplicadas e técnicas sendo ensinadas
   - Exemplos de código, dashboards, gráficos ou visualizações
   - Boas práticas, dicas técnicas e resolução de problemas

3. O RESUMO DEVE SER uma documentação técnica, não uma narrativa do vídeo:
   focado em O QUE foi ensinado, não em QUEM ensinou.

4. TIMESTAMPS: identifique 10-20 momentos técnicos, escolhendo timestamps
   onde telas/interfaces estão visíveis (palavras-chave: "vou mostrar",
   "aqui você", "essa tela", "configurar", "criar", "ajustar").

5. CADA SEÇÃO deve descrever a técnica/ferramenta/conceito demonstrado, os
   passos práticos executados e o que está visível na tela naquele momento.

Retorne um JSON no seguinte formato:
{
  "titulo": "Título técnico do conteúdo",
  "resumo_geral": "Resumo TÉCNICO: ferramentas, técnicas e conceitos abordados",
  "secoes": [
    {
      "titulo": "Nome da técnica/ferramenta/conceito",
      "timestamp_inicio": 0.0,
      "timestamp_fim": 120.5,
      "timestamp_frame": 60.0,
      "tipo_conteudo": "tela_software|configuracao|dashboard|codigo|diagrama|exemplo_pratico|boas_praticas",
      "descricao": "Explicação TÉCNICA: o que está sendo feito, quais passos, que resultado é obtido",
      "citacao": "Frase técnica relevante (apenas se for uma dica/conceito importante)"
    }
  ],
  "conclusao": "Principais técnicas e conceitos abordados - lista objetiva"
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional antes ou depois.`

// buildPrompt embeds the full transcript text and the segment list into the
// analysis instruction template.
func buildPrompt(tr *transcript.Transcript) (string, error) {
	segments, err := json.MarshalIndent(tr.Segmentos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal segments: %w", err)
	}

	return fmt.Sprintf(analysisPrompt, tr.TextoCompleto, segments), nil
}
