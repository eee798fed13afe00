package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

func returnData(w http.ResponseWriter, retData any) {
	writeData(w, retData, 200)
}

func writeData(w http.ResponseWriter, retData any, statusCode int) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(retData); err != nil {
		if strings.Contains(err.Error(), "broken pipe") {
			return
		}
		slog.Error("Couldn't send return data", slog.Any("err", err))
	}
}

func errorData(w http.ResponseWriter, retData any, errCode int) {
	if err, ok := retData.(error); ok {
		retData = err.Error()
	}
	writeData(w, struct {
		Error any `json:"error"`
	}{retData}, errCode)
}
