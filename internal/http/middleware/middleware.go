// middleware — HTTP-мидлвары news-platform: recover, request id,
// логирование, prometheus-метрики, аутентификация и таймаут запроса.
//
// Мидлвары совместимы и с chi.Router.Use, и с ручной сборкой через Chain.
package middleware

import (
	"net/http"
)

// Middleware — функция-обёртка над http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает обработчик списком мидлваров так, что первый
// в списке оказывается внешним (выполняется раньше всех).
func Chain(h http.Handler, list ...Middleware) http.Handler {
	wrapped := h
	for i := len(list) - 1; i >= 0; i-- {
		wrapped = list[i](wrapped)
	}
	return wrapped
}

// statusWriter перехватывает статус ответа и число записанных байт:
// их читают Logging и Metrics после обработки запроса.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Write фиксирует неявный 200, если хендлер не вызывал WriteHeader.
func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}
