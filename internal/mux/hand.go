package mux

import (
	"errors"
	"net/http"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
	"showdown-server/pkg/showdown"
)

type classifyRequest struct {
	Cards []deck.Card `json:"cards"`
}

type categoryResponse struct {
	Category poker.Category `json:"category"`
	Rank     int            `json:"rank"`
}

func newCategoryResponse(c poker.Category) categoryResponse {
	return categoryResponse{
		Category: c,
		Rank:     c.Rank(),
	}
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := poker.NewHand(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, newCategoryResponse(hand.Category()))
	}
}

type showdownRequest struct {
	Entries []showdown.Entry `json:"entries"`
}

type participantResponse struct {
	*showdown.Participant
	categoryResponse
}

type showdownResponse struct {
	Participants []participantResponse `json:"participants"`
	Winner       participantResponse   `json:"winner"`
}

func newParticipantResponse(p *showdown.Participant) participantResponse {
	return participantResponse{
		Participant:      p,
		categoryResponse: newCategoryResponse(p.Category),
	}
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req showdownRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		result, err := showdown.Run(r.Context(), req.Entries, m.workers)
		if err != nil {
			var entryErr showdown.EntryError
			if errors.Is(err, showdown.ErrNoEntries) || errors.As(err, &entryErr) {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp := showdownResponse{
			Participants: make([]participantResponse, len(result.Participants)),
			Winner:       newParticipantResponse(result.Winner),
		}
		for i, p := range result.Participants {
			resp.Participants[i] = newParticipantResponse(p)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
