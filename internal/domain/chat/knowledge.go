package chat

// faqEntry asocia tags (substrings a buscar en el mensaje) con una
// respuesta fija. El orden de la tabla importa: gana el primer match.
type faqEntry struct {
	tags   []string
	answer string
}

var faqTable = []faqEntry{
	{
		tags:   []string{"register", "signup", "create account"},
		answer: "To adopt a pet, you need to register first. Go to Register page, fill details, then login.",
	},
	{
		tags:   []string{"login", "sign in"},
		answer: "Go to Login page and enter your email + password. After login, you can adopt pets.",
	},
	{
		tags:   []string{"adopt", "adoption", "save pet"},
		answer: "Open a pet detail page and click 'Adopt Now'. Only logged-in users can adopt.",
	},
	{
		tags:   []string{"report", "add pet", "new pet", "post"},
		answer: "Click '+ Report a Street Pet' in the header and upload photo + location + details.",
	},
	{
		tags:   []string{"map", "location", "google maps"},
		answer: "Each pet post includes a Google Maps link so you can find the exact place.",
	},
}

const (
	emptyMessageReply = "Please type a message 😊"
	fallbackReply     = "I can help with: registration, login, adoption, reporting pets, and map location. Try asking: 'How to adopt?'"
)
