// Package catalog holds the fixed vocabularies and rule tables the engines
// read. Default returns a fresh value each call.
package catalog

import (
	"github.com/yourname/moodjournal/internal"
)

const (
	ActionBreathing = "breathing"
	ActionLog       = "log"

	UnknownActivityLabel = "Atividade desconhecida"
)

// BatteryRules drive the emotional battery accumulator.
type BatteryRules struct {
	Start            int
	Window           int
	Min              int
	Max              int
	RestorativeBoost int
	DrainingCost     int
	PositiveBoost    int
	NegativeCost     int
	// Advice bands: below CriticalBelow is critical, below CautionBelow
	// is a caution.
	CriticalBelow int
	CautionBelow  int

	Restorative map[string]bool
	Draining    map[string]bool
	Positive    map[internal.EmotionID]bool
	Negative    map[internal.EmotionID]bool
	// Recharge emotions mark records whose activity is suggested when
	// the battery runs low.
	Recharge map[internal.EmotionID]bool
	// FallbackRechargeActivity is suggested when no recharge record exists.
	FallbackRechargeActivity string
	FallbackRechargeLabel    string
}

// MentorRule matches the latest record. An empty Activity matches any
// activity.
type MentorRule struct {
	Emotion     internal.EmotionID
	Activity    string
	Content     string
	ActionLabel string
	ActionTab   string
}

// Texts is the canned copy the engines pick from.
type Texts struct {
	DefaultAdvice  string
	CautionAdvice  string
	CriticalAdvice string // format verb receives the activity label
	Praises        []string

	DefaultName     string
	LateNight       string // format verb receives the name
	Morning         string
	Afternoon       string
	Evening         string
	Quotes          []string
	Welcome         string
	WelcomeAction   string
	Supportive      string
	WorkFatigue     string
	WorkFatigueCTA  string
	Grounding       string
	GroundingAction string
}

type Catalog struct {
	Emotions          []internal.Emotion
	DefaultActivities []internal.Activity
	Battery           BatteryRules
	Tips              map[internal.EmotionID][]internal.Recommendation
	NeutralTipKey     internal.EmotionID
	MaxTips           int
	Texts             Texts
	// MentorRules are tried in order; the first match wins and
	// Texts.Supportive covers the rest.
	MentorRules []MentorRule
}

func Default() *Catalog {
	c := &Catalog{
		Emotions: []internal.Emotion{
			{ID: internal.Feliz, Label: "Feliz", IconName: "Sun", Color: "bg-emerald-400/20 text-emerald-300 border-emerald-400/30"},
			{ID: internal.Bem, Label: "Bem", IconName: "Smile", Color: "bg-teal-400/20 text-teal-300 border-teal-400/30"},
			{ID: internal.Calmo, Label: "Calmo", IconName: "Cloud", Color: "bg-sky-400/20 text-sky-300 border-sky-400/30"},
			{ID: internal.Entusiasmado, Label: "Empolgado", IconName: "Zap", Color: "bg-orange-400/20 text-orange-300 border-orange-400/30"},
			{ID: internal.Neutro, Label: "Neutro", IconName: "Meh", Color: "bg-slate-400/20 text-slate-300 border-slate-400/30"},
			{ID: internal.Cansado, Label: "Cansado", IconName: "Moon", Color: "bg-amber-400/20 text-amber-300 border-amber-400/30"},
			{ID: internal.Ansioso, Label: "Ansioso", IconName: "Activity", Color: "bg-violet-400/20 text-violet-300 border-violet-400/30"},
			{ID: internal.Solitario, Label: "Solitário", IconName: "User", Color: "bg-indigo-400/20 text-indigo-300 border-indigo-400/30"},
			{ID: internal.Triste, Label: "Triste", IconName: "CloudRain", Color: "bg-blue-400/20 text-blue-300 border-blue-400/30"},
			{ID: internal.Irritado, Label: "Irritado", IconName: "Flame", Color: "bg-rose-400/20 text-rose-300 border-rose-400/30"},
		},
		DefaultActivities: []internal.Activity{
			{ID: "trabalho", Label: "Trabalho", IconName: "Briefcase", Color: "text-blue-400"},
			{ID: "estudo", Label: "Estudo", IconName: "BookOpen", Color: "text-indigo-400"},
			{ID: "redes_sociais", Label: "Redes sociais", IconName: "Smartphone", Color: "text-purple-400"},
			{ID: "descanso", Label: "Descanso", IconName: "Coffee", Color: "text-amber-400"},
			{ID: "exercicio", Label: "Exercício", IconName: "Dumbbell", Color: "text-rose-400"},
			{ID: "conversa", Label: "Conversa", IconName: "MessageSquare", Color: "text-teal-400"},
			{ID: "lazer", Label: "Lazer", IconName: "Gamepad2", Color: "text-orange-400"},
			{ID: "reflexao", Label: "Refletir", IconName: "Compass", Color: "text-emerald-400"},
		},
		Battery: BatteryRules{
			Start:            100,
			Window:           15,
			Min:              5,
			Max:              100,
			RestorativeBoost: 12,
			DrainingCost:     8,
			PositiveBoost:    15,
			NegativeCost:     18,
			CriticalBelow:    50,
			CautionBelow:     75,
			Restorative:      map[string]bool{"descanso": true, "lazer": true, "reflexao": true},
			Draining:         map[string]bool{"trabalho": true, "estudo": true, "redes_sociais": true},
			Positive: map[internal.EmotionID]bool{
				internal.Feliz: true, internal.Entusiasmado: true, internal.Calmo: true, internal.Bem: true,
			},
			Negative: map[internal.EmotionID]bool{
				internal.Triste: true, internal.Irritado: true, internal.Ansioso: true, internal.Cansado: true, internal.Solitario: true,
			},
			Recharge: map[internal.EmotionID]bool{
				internal.Feliz: true, internal.Calmo: true, internal.Bem: true,
			},
			FallbackRechargeActivity: "descanso",
			FallbackRechargeLabel:    "um descanso",
		},
		Tips:          defaultTips(),
		NeutralTipKey: internal.Neutro,
		MaxTips:       3,
		Texts: Texts{
			DefaultAdvice:  "Esta é sua bateria emocional, vamos deixar ela cheia sempre que possível, ok?",
			CautionAdvice:  "Atenção: sua energia está baixando. Lembre-se que pequenas pausas fazem milagres.",
			CriticalAdvice: "Nível crítico! Notei que %s costuma te recarregar. Que tal tentar agora?",
			Praises: []string{
				"Incrível! Sua bateria está no máximo. Você está radiante hoje!",
				"Energia total detectada! Aproveite esse estado de plenitude.",
				"100% de luz! Você é sua melhor versão agora.",
			},
			DefaultName: "amigo",
			LateNight:   "Madrugada silenciosa, %s?",
			Morning:     "Bom dia, %s.",
			Afternoon:   "Boa tarde, %s.",
			Evening:     "Boa noite, %s.",
			Quotes: []string{
				"O que importa não é o que acontece, mas como você reage. (Epicteto)",
				"A paz vem de dentro. Não a procure fora. (Buda)",
				"Sua mente é seu próprio lugar, e nela mesma pode fazer do céu um inferno. (John Milton)",
				"A felicidade da sua vida depende da qualidade dos seus pensamentos. (Marco Aurélio)",
				"Tudo o que somos é o resultado do que pensamos. (Buda)",
				"Não é que tenhamos pouco tempo, é que perdemos muito dele. (Sêneca)",
				"Quem olha para fora sonha; quem olha para dentro desperta. (Carl Jung)",
				"A vida é o que acontece enquanto você faz outros planos. (John Lennon)",
			},
			Welcome:         "Espero que possamos passar muitos momentos bons juntos. Pode contar comigo para ser seu porto seguro.",
			WelcomeAction:   "Falar sobre agora",
			Supportive:      "Estou aqui para o que você precisar. Vamos continuar cuidando de você?",
			WorkFatigue:     "Trabalhar cansado é um desafio. O que acha de uma pausa real de 5 minutos agora?",
			WorkFatigueCTA:  "Vamos respirar?",
			Grounding:       "Notei que sua mente está correndo. Vamos tentar aterrar seus pés no agora?",
			GroundingAction: "Acalmar",
		},
	}
	c.MentorRules = []MentorRule{
		{Emotion: internal.Cansado, Activity: "trabalho", Content: c.Texts.WorkFatigue, ActionLabel: c.Texts.WorkFatigueCTA, ActionTab: ActionBreathing},
		{Emotion: internal.Ansioso, Content: c.Texts.Grounding, ActionLabel: c.Texts.GroundingAction, ActionTab: ActionBreathing},
	}
	return c
}

func defaultTips() map[internal.EmotionID][]internal.Recommendation {
	return map[internal.EmotionID][]internal.Recommendation{
		internal.Ansioso: {
			{ID: "a1", Category: "mental", Text: "Tente encontrar 5 coisas azuis ao seu redor agora.", Icon: "Eye", Color: "text-violet-400"},
			{ID: "a2", Category: "physical", Text: "Lave o rosto com água bem gelada para um choque térmico calmante.", Icon: "Droplets", Color: "text-blue-400"},
			{ID: "a6", Category: "mental", Text: "Técnica 5-4-3-2-1: 5 coisas que vê, 4 que toca, 3 que ouve, 2 que cheira.", Icon: "Fingerprint", Color: "text-teal-400"},
		},
		internal.Triste: {
			{ID: "t1", Category: "social", Text: "Ligue para alguém que te ama. Um abraço em voz ajuda.", Icon: "Phone", Color: "text-rose-400"},
			{ID: "t4", Category: "mental", Text: "Escreva 3 coisas pequenas pelas quais é grato hoje.", Icon: "PenTool", Color: "text-emerald-400"},
		},
		internal.Irritado: {
			{ID: "i1", Category: "physical", Text: "Saia para uma caminhada rápida de 5 minutos.", Icon: "Footprints", Color: "text-rose-500"},
		},
		internal.Cansado: {
			{ID: "c1", Category: "environment", Text: "Apague as luzes fortes e use apenas uma luz indireta.", Icon: "Lamp", Color: "text-amber-200"},
			{ID: "c4", Category: "mental", Text: "Desligue todas as telas por 15 minutos.", Icon: "MonitorOff", Color: "text-slate-500"},
		},
		internal.Feliz: {
			{ID: "f1", Category: "social", Text: "Mande uma mensagem de elogio para alguém.", Icon: "Heart", Color: "text-rose-400"},
		},
		internal.Calmo: {
			{ID: "l1", Category: "mental", Text: "Observe sua respiração sem tentar mudá-la.", Icon: "Wind", Color: "text-sky-300"},
		},
	}
}

// IsEmotion reports whether id belongs to the emotion vocabulary.
func (c *Catalog) IsEmotion(id internal.EmotionID) bool {
	for _, e := range c.Emotions {
		if e.ID == id {
			return true
		}
	}
	return false
}

// ResolveEmotion never fails: unknown ids keep their id but borrow the
// neutral entry's presentation.
func (c *Catalog) ResolveEmotion(id internal.EmotionID) internal.Emotion {
	var neutral internal.Emotion
	for _, e := range c.Emotions {
		if e.ID == id {
			return e
		}
		if e.ID == internal.Neutro {
			neutral = e
		}
	}
	neutral.ID = id
	if neutral.Label == "" {
		neutral.Label = string(id)
	}
	return neutral
}

// ResolveActivity looks id up in activities and falls back to a placeholder
// for dangling references.
func ResolveActivity(activities []internal.Activity, id string) internal.Activity {
	if a, ok := FindActivity(activities, id); ok {
		return a
	}
	return internal.Activity{ID: id, Label: UnknownActivityLabel, IconName: "HelpCircle", Color: "text-gray-400"}
}

func FindActivity(activities []internal.Activity, id string) (internal.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return internal.Activity{}, false
}

// TipsFor returns up to MaxTips recommendations for the emotion, falling back
// to the neutral key. The result is always a fresh, non-nil slice.
func (c *Catalog) TipsFor(id internal.EmotionID) []internal.Recommendation {
	tips, ok := c.Tips[id]
	if !ok {
		tips = c.Tips[c.NeutralTipKey]
	}
	n := len(tips)
	if c.MaxTips > 0 && n > c.MaxTips {
		n = c.MaxTips
	}
	out := make([]internal.Recommendation, n)
	copy(out, tips[:n])
	return out
}

// DefaultActivityList returns a copy callers may modify.
func (c *Catalog) DefaultActivityList() []internal.Activity {
	out := make([]internal.Activity, len(c.DefaultActivities))
	copy(out, c.DefaultActivities)
	return out
}
