package feedback

// DeviceInfo - контекст устройства из тела запроса: фиксированные поля
// плюс произвольная телеметрия в extra
type DeviceInfo struct {
	UserAgent  string                 `json:"userAgent"`
	URL        string                 `json:"url,omitempty"`
	ScreenSize string                 `json:"screenSize,omitempty"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// SubmitFeedbackRequest - тело POST /v1/feedback
type SubmitFeedbackRequest struct {
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
	Timestamp  string     `json:"timestamp,omitempty"` // ISO-8601, по умолчанию время сервера
	UserID     string     `json:"userId,omitempty"`    // по умолчанию anonymous
}

// Issue - ошибка валидации одного поля запроса
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
