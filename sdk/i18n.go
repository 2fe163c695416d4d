package sdk

// Locale - поддерживаемые языки виджета
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// MessageKey - ключ строки перевода
type MessageKey string

const (
	KeyTitle              MessageKey = "title"
	KeySuccess            MessageKey = "success"
	KeyRateLimit          MessageKey = "rateLimit"
	KeyError              MessageKey = "error"
	KeyClientError        MessageKey = "clientError"
	KeyServerError        MessageKey = "serverError"
	KeyConnectivityError  MessageKey = "connectivityError"
	KeyUnexpectedError    MessageKey = "unexpectedError"
	KeyRatingError        MessageKey = "ratingError"
	KeyCommentError       MessageKey = "commentError"
	KeyCommentPlaceholder MessageKey = "commentPlaceholder"
	KeySubmit             MessageKey = "submit"
	KeyRetry              MessageKey = "retry"
	KeyCancel             MessageKey = "cancel"
)

var translations = map[Locale]map[MessageKey]string{
	LocaleEN: {
		KeyTitle:              "Your opinion",
		KeySuccess:            "Feedback sent successfully!",
		KeyRateLimit:          "Too many requests. Please wait.",
		KeyError:              "Connection failed. Please try again.",
		KeyClientError:        "Please check your input and try again.",
		KeyServerError:        "Server issue. Please try again later.",
		KeyConnectivityError:  "No internet connection. Check your connection and retry.",
		KeyUnexpectedError:    "Something went wrong. Please try again.",
		KeyRatingError:        "Rating must be between 1 and 5.",
		KeyCommentError:       "Comment is too long (max 1000 characters).",
		KeyCommentPlaceholder: "Comment...",
		KeySubmit:             "Send",
		KeyRetry:              "Retry",
		KeyCancel:             "Cancel",
	},
	LocaleES: {
		KeyTitle:              "Tu opinión",
		KeySuccess:            "¡Comentario enviado!",
		KeyRateLimit:          "Demasiadas solicitudes. Espera por favor.",
		KeyError:              "Fallo de conexión. Intenta de nuevo.",
		KeyClientError:        "Por favor, revisa tu entrada e intenta de nuevo.",
		KeyServerError:        "Problema del servidor. Intenta de nuevo más tarde.",
		KeyConnectivityError:  "Sin conexión a internet. Verifica tu conexión y reintenta.",
		KeyUnexpectedError:    "Algo salió mal. Intenta de nuevo.",
		KeyRatingError:        "La calificación debe estar entre 1 y 5.",
		KeyCommentError:       "El comentario es demasiado largo (máx. 1000 caracteres).",
		KeyCommentPlaceholder: "Comentario...",
		KeySubmit:             "Enviar",
		KeyRetry:              "Reintentar",
		KeyCancel:             "Cancelar",
	},
}

// Translate - строка перевода; для неизвестной локали или ключа
// возвращается английский вариант
func Translate(key MessageKey, locale Locale) string {
	if msgs, ok := translations[locale]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}

	return translations[LocaleEN][key]
}
