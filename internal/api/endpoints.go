package api

import "net/http"

// Endpoint names a backend operation. It is used as the metrics label.
type Endpoint string

const (
	EndpointSearch   Endpoint = "search"
	EndpointSimulate Endpoint = "simulate"
	EndpointChat     Endpoint = "chat"
	EndpointQuiz     Endpoint = "quiz"
	EndpointResearch Endpoint = "research"
	EndpointSeed     Endpoint = "seed"
)

type route struct {
	method string
	path   string
}

var routes = map[Endpoint]route{
	EndpointSearch:   {http.MethodGet, "/api/drugs/search"},
	EndpointSimulate: {http.MethodPost, "/api/interactions/simulate"},
	EndpointChat:     {http.MethodPost, "/api/chat"},
	EndpointQuiz:     {http.MethodPost, "/api/quizzes/generate"},
	EndpointResearch: {http.MethodPost, "/api/research/summarize"},
	EndpointSeed:     {http.MethodPost, "/api/seed"},
}

// Path returns the fixed path of the endpoint.
func (e Endpoint) Path() string {
	return routes[e].path
}

// Method returns the HTTP method of the endpoint.
func (e Endpoint) Method() string {
	return routes[e].method
}
