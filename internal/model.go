package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

type EmotionID string

const (
	Feliz        EmotionID = "feliz"
	Bem          EmotionID = "bem"
	Neutro       EmotionID = "neutro"
	Cansado      EmotionID = "cansado"
	Ansioso      EmotionID = "ansioso"
	Triste       EmotionID = "triste"
	Irritado     EmotionID = "irritado"
	Calmo        EmotionID = "calmo"
	Entusiasmado EmotionID = "entusiasmado"
	Solitario    EmotionID = "solitario"
)

// EmotionRecord is one logged moment. Records are append-only; the only
// change after creation is whole-record deletion.
type EmotionRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Date       string    `json:"date"` // YYYY-MM-DD, UTC
	EmotionID  EmotionID `json:"emotionId"`
	ActivityID string    `json:"activityId"`
	Intensity  int       `json:"intensity"` // 1..5
	Timestamp  int64     `json:"timestamp"` // unix millis
	Note       string    `json:"note,omitempty"`
	Weather    string    `json:"weather,omitempty"`
}

func (r EmotionRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

type Emotion struct {
	ID       EmotionID `json:"id"`
	Label    string    `json:"label"`
	IconName string    `json:"iconName"`
	Color    string    `json:"color"`
}

type Activity struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	IconName string `json:"iconName"`
	Color    string `json:"color"`
}

type UserProfile struct {
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}

type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"` // physical, social, mental, environment
	Text     string `json:"text"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

type MentorNote struct {
	Greeting        string           `json:"greeting"`
	Content         string           `json:"content"`
	Footnote        string           `json:"footnote,omitempty"`
	ActionLabel     string           `json:"actionLabel,omitempty"`
	ActionTab       string           `json:"actionTab,omitempty"` // breathing, log
	Recommendations []Recommendation `json:"recommendations"`
}

type Insights struct {
	TopEmotion           *Emotion   `json:"topEmotion"`
	MostFrequentActivity *Activity  `json:"mostFrequentActivity"`
	EnergyLevel          int        `json:"energyLevel"`
	BatteryAdvice        string     `json:"batteryAdvice"`
	MentorNote           MentorNote `json:"mentorNote"`
}
