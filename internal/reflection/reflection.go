// Package reflection asks a hosted language model for a short, warm
// reflection on the user's latest records. It never returns an error to the
// caller: every failure becomes a message the user can read.
package reflection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
)

const recentLimit = 10

// Completer sends one system + user exchange to a chat model.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrMissingKey is returned by completers built without an API key.
var ErrMissingKey = errors.New("reflection: missing api key")

type Reflector struct {
	completer Completer
	cat       *catalog.Catalog
	logger    internal.Logger
}

func NewReflector(completer Completer, cat *catalog.Catalog, logger internal.Logger) *Reflector {
	return &Reflector{completer: completer, cat: cat, logger: logger}
}

// Reflect returns "" when there is nothing to reflect on.
func (r *Reflector) Reflect(ctx context.Context, records []internal.EmotionRecord, profile *internal.UserProfile, activities []internal.Activity) string {
	if len(records) == 0 {
		return ""
	}
	if r.completer == nil {
		return "A reflexão está desativada neste servidor."
	}

	out, err := r.completer.Complete(ctx, r.systemPrompt(profile), r.userPrompt(records, activities))
	if err != nil {
		r.logger.Errorf("reflection: generation failed: %v", err)
		return failureMessage(err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "Não consegui pensar em nada agora. Tente de novo em instantes."
	}
	return out
}

func (r *Reflector) systemPrompt(profile *internal.UserProfile) string {
	name := r.cat.Texts.DefaultName
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}
	return fmt.Sprintf(`Você é o cérebro do "EmotiTime", um mentor para pessoas com TDAH e dificuldades sociais.
Personalidade: Minimalista, ultra-empática, poética e sem julgamentos.

REGRAS DE RESPOSTA:
1. Responda diretamente ao usuário: %s.
2. Use no máximo 3 frases curtas e acolhedoras.
3. Foco em validar o sentimento e dar um micro-passo para o foco ou conforto social.
4. Nunca use listas.
5. Seja o suporte silencioso que não exige energia social.`, name)
}

func (r *Reflector) userPrompt(records []internal.EmotionRecord, activities []internal.Activity) string {
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}
	var b strings.Builder
	b.WriteString("Histórico recente:\n")
	for _, rec := range records {
		emotion := r.cat.ResolveEmotion(rec.EmotionID).Label
		activity := catalog.ResolveActivity(activities, rec.ActivityID).Label
		fmt.Fprintf(&b, "- Sentiu-se %s enquanto fazia %s", emotion, activity)
		if rec.Note != "" {
			fmt.Fprintf(&b, " (Nota: %s)", rec.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nGere um insight curto.")
	return b.String()
}

func failureMessage(err error) string {
	if errors.Is(err, ErrMissingKey) {
		return "Erro de Configuração: a chave da API de reflexão não foi definida (REFLECTION_API_KEY)."
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "Falha na conexão: a resposta demorou demais."
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized"):
		return fmt.Sprintf("Não Autorizado (401): %s. Verifique se a chave está correta.", msg)
	case strings.Contains(lower, "402") || strings.Contains(lower, "insufficient"):
		return "Saldo Insuficiente no provedor. Verifique seus créditos."
	case strings.Contains(lower, "status code") || strings.Contains(lower, "api returned"):
		return fmt.Sprintf("Erro na API: %s", msg)
	default:
		return fmt.Sprintf("Falha na conexão: %s", msg)
	}
}
