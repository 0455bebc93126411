package domain

// Ключи системных сообщений (локализация — на стороне UI).
const (
	MsgCartNotFound     = "CartNotFound"
	MsgCustomerNotFound = "CustomerNotFound"
	MsgPartyNotFound    = "PartyNotFound"
	MsgLineNotFound     = "CartLineNotFound"
	MsgInvalidLine      = "InvalidLine"
	MsgInvalidQuantity  = "InvalidQuantity"
	MsgInvalidPromoCode = "InvalidPromoCode"
	MsgInvalidCurrency  = "InvalidCurrency"
	MsgInvalidInput     = "InvalidInput"
	MsgSystemError      = "SystemError"
)

// SystemMessage — сообщение провайдера: ключ для локализации и технический текст.
type SystemMessage struct {
	Key  string `json:"key"`
	Text string `json:"text,omitempty"`
}

// ServiceResult — конверт любого вызова бэкенда: флаг успеха и собранные сообщения.
type ServiceResult struct {
	Success  bool            `json:"success"`
	Messages []SystemMessage `json:"messages,omitempty"`
}

// OK — успешный результат без сообщений.
func OK() ServiceResult { return ServiceResult{Success: true} }

// Fail — неуспешный результат с одним сообщением.
func Fail(key, text string) ServiceResult {
	return ServiceResult{Messages: []SystemMessage{{Key: key, Text: text}}}
}

// Append — добавляет сообщения другого результата (успех не меняет).
func (r *ServiceResult) Append(other ServiceResult) {
	r.Messages = append(r.Messages, other.Messages...)
}

// CartResult — ответ бэкенда на операции с корзиной.
type CartResult struct {
	ServiceResult
	Cart *Cart `json:"cart,omitempty"`
}

// Response — пара (результат провайдера, типизированные данные).
// При Success == false Payload может быть заполнен для частичного отображения.
type Response[T any] struct {
	Result  ServiceResult `json:"result"`
	Payload T             `json:"payload"`
}

// NewResponse — конструктор Response.
func NewResponse[T any](result ServiceResult, payload T) Response[T] {
	return Response[T]{Result: result, Payload: payload}
}
