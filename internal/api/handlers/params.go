package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ChaletBookingService/pkg/types"
)

// PathInt64 положительный int64 из переменной маршрута
func PathInt64(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryDate необязательная дата из query (YYYY-MM-DD или RFC3339)
// Возвращает nil, если параметр не передан
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := types.NewDateFromString(raw)
	if err != nil {
		return nil, err
	}
	t := d.Time()
	return &t, nil
}
