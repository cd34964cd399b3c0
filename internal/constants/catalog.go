package constants

// FeelingOptions are the labels offered by the entry form.
var FeelingOptions = []string{
	"😊 Happiness", "😌 Calm", "😆 Joy", "😤 Irritation", "😰 Anxiety", "😴 Tiredness", "😢 Sadness",
	"😎 Pride", "💪 Resilience", "😠 Anger", "🤢 Disgust", "😔 Confusion", "😊 Gratitude",
}

// SelfCareOptions are the self-care labels offered by the entry form.
var SelfCareOptions = []string{
	"Breakfast", "Lunch", "Dinner", "Fresh air", "Walk", "Talk with friends",
	"Vitamins", "Exercise", "Reading", "Sport", "Rest",
}
