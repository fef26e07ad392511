package constant

// Response type tags returned with every bot turn. The widget switches
// rendering on these, so the strings are part of the wire contract.
const (
	ResponseTypeProfileCollection = "profile_collection"
	ResponseTypeProfileComplete   = "profile_complete"
	ResponseTypeHumanHandling     = "human_handling"
	ResponseTypeCountrySelection  = "country_selection"
	ResponseTypeProgramSelection  = "program_selection"
	ResponseTypeEscalated         = "escalated"
	ResponseTypeRAG               = "rag_response"
	ResponseTypeGreeting          = "greeting_response"
	ResponseTypeClarificationNeed = "clarification_needed"
)

// Retrieval thresholds. Production turns answer above MinRAGScore,
// BestAnswerMinScore is the stricter default for direct KB queries.
const (
	MinRAGScore        = 0.2
	BestAnswerMinScore = 0.3
)

const DefaultCountryCode = "+977"

type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

var CountryCodes = []CountryCode{
	{Code: "+977", Country: "Nepal", Flag: "🇳🇵"},
	{Code: "+91", Country: "India", Flag: "🇮🇳"},
	{Code: "+1", Country: "United States/Canada", Flag: "🇺🇸🇨🇦"},
	{Code: "+44", Country: "United Kingdom", Flag: "🇬🇧"},
	{Code: "+61", Country: "Australia", Flag: "🇦🇺"},
	{Code: "+49", Country: "Germany", Flag: "🇩🇪"},
	{Code: "+33", Country: "France", Flag: "🇫🇷"},
	{Code: "+31", Country: "Netherlands", Flag: "🇳🇱"},
	{Code: "+64", Country: "New Zealand", Flag: "🇳🇿"},
	{Code: "+65", Country: "Singapore", Flag: "🇸🇬"},
	{Code: "+353", Country: "Ireland", Flag: "🇮🇪"},
	{Code: "+81", Country: "Japan", Flag: "🇯🇵"},
	{Code: "+86", Country: "China", Flag: "🇨🇳"},
	{Code: "+880", Country: "Bangladesh", Flag: "🇧🇩"},
	{Code: "+94", Country: "Sri Lanka", Flag: "🇱🇰"},
}

var GreetingKeywords = []string{
	"hello", "hi", "hey", "how are you", "good morning", "good afternoon",
	"good evening", "greetings", "what's up", "how's it going", "namaste",
}

// Menu commands are matched exactly on the lowercased message.
var CountryMenuCommands = []string{"explore countries", "choose country", "🌍 choose country"}
var ProgramMenuCommands = []string{"browse programs", "🎓 browse programs"}

// Escalation triggers: the first set matches the whole message, the
// second matches anywhere inside it.
var EscalationExactPhrases = []string{"talk to advisor", "🗣️ talk to advisor", "human agent"}
var EscalationSubstringPhrases = []string{
	"talk to advisor", "human advisor", "speak to human",
	"talk to human", "human agent", "real person", "live agent",
}

var EmailSkipKeywords = []string{"skip", "no", "no thanks", "pass"}

// Canned suggestion sets.
var (
	GreetingSuggestions = []string{
		"🌍 Choose Country", "🎓 Browse Programs",
		"📚 Requirements", "💰 Scholarships", "🗣️ Talk to Advisor",
	}
	ClarificationSuggestions = []string{
		"🌍 Choose Country", "🎓 Browse Programs",
		"📚 Requirements", "🗣️ Talk to Advisor",
	}
	RAGFollowupSuggestions = []string{
		"🌍 Choose Country", "🎓 Browse Programs", "🗣️ Talk to Advisor",
	}
	CountrySelectionSuggestions = []string{
		"🇺🇸 United States", "🇨🇦 Canada", "🇬🇧 United Kingdom",
		"🇦🇺 Australia", "🇩🇪 Germany", "More countries", "🎓 Browse by Field",
	}
	ProgramSelectionSuggestions = []string{
		"🎓 Undergraduate Programs", "🎓 Graduate Programs", "🎓 PhD Programs",
		"💼 MBA Programs", "🔬 Research Programs", "Back to main menu",
	}
	ProfileCompleteSuggestions = []string{
		"🌍 Explore Countries",
		"🎓 Browse Programs",
		"💰 Financial Aid Info",
		"📋 Admission Requirements",
		"🗣️ Talk to Advisor",
	}
)

// Canned response texts.
const (
	WelcomeMessage = "Hello! 👋 Welcome to EduConsult. I'm here to help you with your study abroad journey.<br><br>To get started, I'll need to collect some information. What's your full name?"

	GreetingMessage = "Hello! 👋 Welcome to EduConsult. I'm here to help you with your study abroad journey. How can I assist you today?"

	ClarificationMessage = "I'd be happy to help you with your study abroad plans. Could you please tell me which country you're interested in or what specific information you need?"

	CountrySelectionMessage = "Here are the top study destinations. Which country interests you?"

	ProgramSelectionMessage = "What type of program are you interested in?"

	EscalatedMessage = "I'm connecting you with one of our education consultants. Please wait a moment..."

	ReEscalationMessage = "Your earlier request has already been handled by our advisor team. To speak with an advisor again, please start a new conversation."
)
