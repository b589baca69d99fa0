package feelings

// Emotion identifies a feeling on the first step.
type Emotion string

const (
	Joy       Emotion = "joy"
	Calm      Emotion = "calm"
	Fear      Emotion = "fear"
	Sadness   Emotion = "sadness"
	Anger     Emotion = "anger"
	Tiredness Emotion = "tiredness"
)

// Emotions lists every emotion in display order.
var Emotions = []Emotion{Joy, Calm, Fear, Sadness, Anger, Tiredness}

// Card is an icon, title and description shown on a step.
type Card struct {
	ID          string `json:"id,omitempty"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type emotionData struct {
	card        Card
	intensities [MaxIntensity]Card
	needs       []Card
	activities  []Card
	sound       string
}

var catalog = map[Emotion]emotionData{
	Joy: {
		card: Card{Icon: "😊", Title: "Joy", Description: "I feel happy"},
		intensities: [MaxIntensity]Card{
			{Icon: "🙂", Title: "A little happy", Description: "I feel good"},
			{Icon: "😊", Title: "Happy", Description: "I am in a good mood"},
			{Icon: "😄", Title: "Joyful", Description: "I feel really good"},
			{Icon: "😁", Title: "Very joyful", Description: "I am super happy"},
			{Icon: "🤩", Title: "Euphoric", Description: "I am overflowing with joy"},
		},
		needs: []Card{
			{ID: "share", Icon: "🎵", Title: "Share my joy", Description: "Express this happiness with others"},
			{ID: "create", Icon: "🎨", Title: "Create something", Description: "Use this positive energy"},
			{ID: "celebrate", Icon: "🎉", Title: "Celebrate", Description: "Enjoy this happy moment"},
		},
		activities: []Card{
			{Icon: "🎵", Title: "Dance or sing a song", Description: "Let your body move to your favourite music to express your joy."},
			{Icon: "🎨", Title: "Draw or colour", Description: "Create something beautiful with your favourite colours."},
			{Icon: "📞", Title: "Call someone you love", Description: "Share your happiness with a special person."},
		},
		sound: "birds",
	},
	Calm: {
		card: Card{Icon: "😌", Title: "Calm", Description: "I feel peaceful"},
		intensities: [MaxIntensity]Card{
			{Icon: "😐", Title: "A little calm", Description: "I feel neutral"},
			{Icon: "😌", Title: "Calm", Description: "I feel peaceful"},
			{Icon: "🧘", Title: "Very calm", Description: "I am serene"},
			{Icon: "😇", Title: "Deeply calm", Description: "I feel zen"},
			{Icon: "🕊️", Title: "Total peace", Description: "I am in harmony"},
		},
		needs: []Card{
			{ID: "keep", Icon: "🧘", Title: "Keep this peace", Description: "Preserve this moment of serenity"},
			{ID: "recharge", Icon: "📚", Title: "Recharge", Description: "Enjoy this quiet time"},
			{ID: "savour", Icon: "🌸", Title: "Savour the moment", Description: "Appreciate this inner calm"},
		},
		activities: []Card{
			{Icon: "📚", Title: "Read a book quietly", Description: "Settle in comfortably with a book you like."},
			{Icon: "🧘", Title: "Meditate or breathe deeply", Description: "Close your eyes and focus on your breathing."},
			{Icon: "🌿", Title: "Watch nature", Description: "Look out of the window or go outside to admire plants and animals."},
		},
		sound: "forest",
	},
	Fear: {
		card: Card{Icon: "😨", Title: "Fear", Description: "I feel worried"},
		intensities: [MaxIntensity]Card{
			{Icon: "😟", Title: "A little worried", Description: "I feel slightly uneasy"},
			{Icon: "😰", Title: "Worried", Description: "I have worries"},
			{Icon: "😨", Title: "Afraid", Description: "I am really scared"},
			{Icon: "😱", Title: "Very afraid", Description: "I am frightened"},
			{Icon: "😵", Title: "Terror", Description: "I feel intense fear"},
		},
		needs: []Card{
			{ID: "reassure", Icon: "🤗", Title: "Be reassured", Description: "Get comfort and safety"},
			{ID: "confidence", Icon: "💪", Title: "Regain confidence", Description: "Find my courage again"},
			{ID: "protection", Icon: "🛡️", Title: "Feel protected", Description: "Be in a safe place"},
		},
		activities: []Card{
			{Icon: "🤗", Title: "Hug or hold a hand", Description: "Ask someone you trust for a hug."},
			{Icon: "🧸", Title: "Squeeze a plush or a blanket", Description: "Wrap yourself in a soft blanket with your cuddly toy."},
			{Icon: "🎧", Title: "Listen to soft music", Description: "Put on your headphones and listen to soothing sounds."},
		},
		sound: "lullaby",
	},
	Sadness: {
		card: Card{Icon: "😢", Title: "Sadness", Description: "I feel sad"},
		intensities: [MaxIntensity]Card{
			{Icon: "😕", Title: "A little sad", Description: "I don't feel my best"},
			{Icon: "😢", Title: "Sad", Description: "I feel sorrow"},
			{Icon: "😭", Title: "Very sad", Description: "I want to cry"},
			{Icon: "💔", Title: "Deeply sad", Description: "My heart is heavy"},
			{Icon: "😞", Title: "Despair", Description: "I feel crushed"},
		},
		needs: []Card{
			{ID: "comfort", Icon: "💙", Title: "Be comforted", Description: "Receive compassion"},
			{ID: "express", Icon: "🗣️", Title: "Express my feelings", Description: "Share what I feel"},
			{ID: "time", Icon: "⏰", Title: "Take my time", Description: "Let this emotion pass"},
		},
		activities: []Card{
			{Icon: "😢", Title: "Cry if I need to", Description: "It is normal to cry, it helps release sadness."},
			{Icon: "🗣️", Title: "Talk about how I feel", Description: "Find someone you trust to share your emotions with."},
			{Icon: "🎨", Title: "Draw my emotions", Description: "Use colours to put what you feel on paper."},
		},
		sound: "rain",
	},
	Anger: {
		card: Card{Icon: "😠", Title: "Anger", Description: "I feel angry"},
		intensities: [MaxIntensity]Card{
			{Icon: "😤", Title: "A little annoyed", Description: "Something bothers me"},
			{Icon: "😠", Title: "Angry", Description: "I am cross"},
			{Icon: "😡", Title: "Very angry", Description: "I am really upset"},
			{Icon: "🤬", Title: "Furious", Description: "I am boiling with anger"},
			{Icon: "💢", Title: "Rage", Description: "I am beside myself"},
		},
		needs: []Card{
			{ID: "release", Icon: "💨", Title: "Release this energy", Description: "Let go of this tension"},
			{ID: "understand", Icon: "🎯", Title: "Understand why", Description: "Find the cause of my anger"},
			{ID: "calm-down", Icon: "😌", Title: "Calm down", Description: "Soothe this intense emotion"},
		},
		activities: []Card{
			{Icon: "💨", Title: "Breathe deeply", Description: "Breathe in slowly through your nose, hold, then breathe out through your mouth."},
			{Icon: "🏃", Title: "Move or exercise", Description: "Run, jump, or move around to release the energy."},
			{Icon: "🥊", Title: "Punch a cushion", Description: "Use a cushion or a pillow to release your anger without hurting anyone."},
		},
		sound: "brown-noise",
	},
	Tiredness: {
		card: Card{Icon: "😴", Title: "Tiredness", Description: "I feel tired"},
		intensities: [MaxIntensity]Card{
			{Icon: "😪", Title: "A little tired", Description: "I lack some energy"},
			{Icon: "😴", Title: "Tired", Description: "I need rest"},
			{Icon: "🥱", Title: "Very tired", Description: "I am really worn out"},
			{Icon: "😵‍💫", Title: "Exhausted", Description: "I have no energy left"},
			{Icon: "🛌", Title: "Completely drained", Description: "I am at the end of my rope"},
		},
		needs: []Card{
			{ID: "rest", Icon: "😴", Title: "Rest", Description: "Recover some energy"},
			{ID: "recharge", Icon: "🔋", Title: "Recharge my batteries", Description: "Take care of myself"},
			{ID: "slow-down", Icon: "🛌", Title: "Slow down", Description: "Take a break"},
		},
		activities: []Card{
			{Icon: "😴", Title: "Take a nap", Description: "Lie down somewhere comfortable to rest."},
			{Icon: "🛁", Title: "Take a warm bath", Description: "Warm water will relax your muscles and soothe you."},
			{Icon: "🍵", Title: "Drink something warm", Description: "A warm drink can comfort you and give you energy."},
		},
		sound: "ocean",
	},
}

// Info returns the card describing e.
func (e Emotion) Info() (Card, bool) {
	d, ok := catalog[e]
	return d.card, ok
}

// Valid reports whether e is a known emotion.
func (e Emotion) Valid() bool {
	_, ok := catalog[e]
	return ok
}

// Intensities returns the five intensity cards of e, mildest first.
func (e Emotion) Intensities() []Card {
	d, ok := catalog[e]
	if !ok {
		return nil
	}
	return d.intensities[:]
}

// Needs returns the needs offered for e.
func (e Emotion) Needs() []Card {
	return catalog[e].needs
}

// Activities returns the activities suggested for e.
func (e Emotion) Activities() []Card {
	return catalog[e].activities
}

// SuggestedSound returns the sound key offered to calm or accompany e.
func (e Emotion) SuggestedSound() string {
	return catalog[e].sound
}
