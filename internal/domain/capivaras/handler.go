package capivaras

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"capivaras-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Mensajes expuestos al cliente (en portugués, igual que el contrato público).
const (
	MsgNotFound      = "Capivara não encontrada."
	MsgRequired      = "Nome, data de nascimento e habitatId são obrigatórios."
	MsgDeleted       = "Capivara deletada com sucesso."
	MsgInvalidJSON   = "JSON inválido."
	MsgInternalError = "Erro interno ao acessar os dados."
)

const maxBodyBytes = 1 << 20 // 1MB

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/capivaras", func(cr chi.Router) {
		cr.Get("/", listCapivarasHandler(svc, log))
		cr.Post("/", createCapivaraHandler(svc, log))

		cr.Get("/{id}", getCapivaraHandler(svc, log))
		// POST ignora el id del path
		cr.Post("/{id}", createCapivaraHandler(svc, log))
		cr.Put("/{id}", updateCapivaraHandler(svc, log))
		cr.Delete("/{id}", deleteCapivaraHandler(svc, log))

		// El id es el segundo segmento; lo que venga después se ignora.
		cr.Get("/{id}/*", getCapivaraHandler(svc, log))
		cr.Post("/{id}/*", createCapivaraHandler(svc, log))
		cr.Put("/{id}/*", updateCapivaraHandler(svc, log))
		cr.Delete("/{id}/*", deleteCapivaraHandler(svc, log))
	})
}

// createCapivaraRequest es el cuerpo para registrar una capivara. Los tres campos son obligatorios.
type createCapivaraRequest struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	HabitatID      string `json:"habitatId"`
}

// updateCapivaraRequest acepta cualquier subconjunto de campos.
type updateCapivaraRequest struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	HabitatID      string `json:"habitatId"`
}

// MessageResponse es el cuerpo de errores y confirmaciones.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// listCapivarasHandler godoc
// @Summary Listar capivaras
// @Description Devuelve la colección completa en orden de inserción.
// @Tags capivaras
// @Produce json
// @Success 200 {array} Capivara
// @Failure 500 {object} MessageResponse
// @Router /capivaras [get]
func listCapivarasHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			internalError(w, r, log, err)
			return
		}
		if items == nil {
			items = []Capivara{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getCapivaraHandler godoc
// @Summary Obtener capivara
// @Tags capivaras
// @Produce json
// @Param id path string true "ID de la capivara"
// @Success 200 {object} Capivara
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /capivaras/{id} [get]
func getCapivaraHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeMessage(w, http.StatusNotFound, MsgNotFound)
				return
			}
			internalError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// createCapivaraHandler godoc
// @Summary Crear capivara
// @Description Genera un ID corto de 8 caracteres y agrega el registro al final de la colección.
// @Tags capivaras
// @Accept json
// @Produce json
// @Param payload body createCapivaraRequest true "nome, dataNascimento y habitatId"
// @Success 201 {object} Capivara
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /capivaras [post]
func createCapivaraHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCapivaraRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, MsgInvalidJSON)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Nome:           req.Nome,
			DataNascimento: req.DataNascimento,
			HabitatID:      req.HabitatID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, MsgRequired)
				return
			}
			internalError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, c)
	}
}

// updateCapivaraHandler godoc
// @Summary Actualizar capivara
// @Description Merge parcial: los campos ausentes o vacíos conservan su valor. El id no cambia.
// @Tags capivaras
// @Accept json
// @Produce json
// @Param id path string true "ID de la capivara"
// @Param payload body updateCapivaraRequest true "Cualquier subconjunto de campos"
// @Success 200 {object} Capivara
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /capivaras/{id} [put]
func updateCapivaraHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateCapivaraRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, MsgInvalidJSON)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Nome:           req.Nome,
			DataNascimento: req.DataNascimento,
			HabitatID:      req.HabitatID,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeMessage(w, http.StatusNotFound, MsgNotFound)
				return
			}
			internalError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

// deleteCapivaraHandler godoc
// @Summary Eliminar capivara
// @Tags capivaras
// @Produce json
// @Param id path string true "ID de la capivara"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /capivaras/{id} [delete]
func deleteCapivaraHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeMessage(w, http.StatusNotFound, MsgNotFound)
				return
			}
			internalError(w, r, log, err)
			return
		}
		writeMessage(w, http.StatusOK, MsgDeleted)
	}
}

// decodeBody lee el body completo antes de decodificar.
// Body vacío o JSON mal formado => error (el handler responde 400).
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Error("capivaras store failure", map[string]any{
		"error":      err.Error(),
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
	})
	writeMessage(w, http.StatusInternalServerError, MsgInternalError)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Mensagem: msg})
}

// writeJSON también existe en router para el fallback 404.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
