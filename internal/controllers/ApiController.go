package controllers

import (
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"alarmclock/internal/services"
	"fmt"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 64 << 10 // 64 KB

type alarmRequest struct {
	Time string `json:"time"`
	Tone string `json:"tone"`
}

type ApiController struct {
	logger  providers.Logger
	service services.AlarmServiceInterface
	cache   providers.SnapshotCacheInterface
}

func NewApiController(logger providers.Logger, service services.AlarmServiceInterface, cache providers.SnapshotCacheInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (ac *ApiController) writeList(w http.ResponseWriter, status int, list models.AlarmList) {
	gson, err := json.Marshal(list)
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Encode alarms: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, gson)
}

// decodeAlarm reads the request body and returns it with Time normalised to HH:MM.
func (ac *ApiController) decodeAlarm(w http.ResponseWriter, r *http.Request) (alarmRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload alarmRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return payload, false
	}
	if payload.Time == "" {
		http.Error(w, services.ErrMissingTime.Error(), http.StatusBadRequest)
		return payload, false
	}
	clock, err := models.NormalizeClock(payload.Time)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return payload, false
	}
	payload.Time = clock
	return payload, true
}

func (ac *ApiController) parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return 0, false
	}
	if n := len(ac.service.Alarms()); index < 0 || index >= n {
		http.Error(w, fmt.Sprintf("%s: %d of %d", services.ErrInvalidIndex, index, n), http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func (ac *ApiController) findTime(w http.ResponseWriter, clock string) bool {
	if ac.service.Alarms().IndexOfTime(clock) == -1 {
		http.Error(w, "no alarm at "+clock, http.StatusNotFound)
		return false
	}
	return true
}

func (ac *ApiController) ListAlarms(w http.ResponseWriter, r *http.Request) {
	revision := ac.service.Revision()
	if data, ok := ac.cache.Get(revision); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	gson, err := json.Marshal(ac.service.Alarms())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set(revision, gson)
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) AddAlarm(w http.ResponseWriter, r *http.Request) {
	payload, ok := ac.decodeAlarm(w, r)
	if !ok {
		return
	}
	ac.writeList(w, http.StatusCreated, ac.service.AddAlarm(payload.Time, payload.Tone))
}

func (ac *ApiController) ToggleAlarm(w http.ResponseWriter, r *http.Request) {
	index, ok := ac.parseIndex(w, r)
	if !ok {
		return
	}
	ac.writeList(w, http.StatusOK, ac.service.ToggleAlarm(index))
}

func (ac *ApiController) DeleteAlarm(w http.ResponseWriter, r *http.Request) {
	index, ok := ac.parseIndex(w, r)
	if !ok {
		return
	}
	ac.writeList(w, http.StatusOK, ac.service.DeleteAlarm(index))
}

func (ac *ApiController) SnoozeAlarm(w http.ResponseWriter, r *http.Request) {
	payload, ok := ac.decodeAlarm(w, r)
	if !ok || !ac.findTime(w, payload.Time) {
		return
	}
	ac.writeList(w, http.StatusOK, ac.service.SnoozeAlarm(models.Alarm{Time: payload.Time}))
}

func (ac *ApiController) DismissAlarm(w http.ResponseWriter, r *http.Request) {
	payload, ok := ac.decodeAlarm(w, r)
	if !ok || !ac.findTime(w, payload.Time) {
		return
	}
	ac.writeList(w, http.StatusOK, ac.service.DismissAlarm(models.Alarm{Time: payload.Time}))
}
