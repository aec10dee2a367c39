package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/petarea/petarea/internal/common"
	"github.com/petarea/petarea/internal/server/models"
	"github.com/petarea/petarea/internal/server/repositories/users"
)

const maxUploadBytes = 10 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// savePhoto stores the optional "foto" part of a multipart request and
// returns its asset reference, or "" when no file was sent.
func (s *Server) savePhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("foto")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return s.assets.Save(r.Context(), header.Filename, file)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var user models.User
	var senha string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
			return
		}
		user.Nome = r.FormValue("nome")
		user.Sexo = r.FormValue("sexo")
		user.Email = r.FormValue("email")
		user.Celular = r.FormValue("celular")
		user.DataAniversario = r.FormValue("dataAniversario")
		user.Idade, _ = strconv.Atoi(r.FormValue("idade"))
		senha = r.FormValue("senha")

		foto, err := s.savePhoto(r)
		if err != nil {
			s.logger.Error(ctx, "saving photo", "error", err.Error())
			http.Error(w, "Erro ao salvar o usuário", http.StatusInternalServerError)
			return
		}
		user.Foto = foto
	} else {
		var body struct {
			models.User
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
			return
		}
		user = body.User
		senha = body.Senha
	}

	if _, err := s.users.Register(ctx, &user, senha); err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
		case errors.Is(err, common.ErrorAlreadyExists):
			http.Error(w, "Usuário já existe.", http.StatusBadRequest)
		default:
			s.logger.Error(ctx, "registering user", "error", err.Error())
			http.Error(w, "Erro ao salvar o usuário", http.StatusInternalServerError)
		}
		return
	}

	s.logger.Info(ctx, "user registered", "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Usuário cadastrado com sucesso!"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Email e senha são obrigatórios.", http.StatusBadRequest)
		return
	}

	token, err := s.users.Login(ctx, body.Email, body.Senha)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			http.Error(w, "Email e senha são obrigatórios.", http.StatusBadRequest)
		case errors.Is(err, common.ErrorUnauthorized):
			http.Error(w, "Email ou senha inválidos.", http.StatusUnauthorized)
		default:
			s.logger.Error(ctx, "login", "error", err.Error())
			http.Error(w, "Erro no servidor.", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login realizado com sucesso.",
		"token":   token,
	})
}

func (s *Server) handleUserArea(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID, _ := userIDFrom(ctx)

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "loading user area", "error", err.Error())
		http.Error(w, "Erro ao buscar informações do usuário.", http.StatusInternalServerError)
		return
	}

	pets, err := s.pets.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "loading user area", "error", err.Error())
		http.Error(w, "Erro ao buscar informações do usuário.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Bem-vindo à Área do Usuário Pet!",
		"user":    user,
		"pets":    pets,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID, _ := userIDFrom(ctx)

	var upd users.ProfileUpdate

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Erro ao atualizar o perfil", http.StatusBadRequest)
			return
		}
		upd.Nome = r.FormValue("nome")
		upd.Email = r.FormValue("email")

		foto, err := s.savePhoto(r)
		if err != nil {
			s.logger.Error(ctx, "saving photo", "error", err.Error())
			http.Error(w, "Erro ao atualizar o perfil", http.StatusInternalServerError)
			return
		}
		upd.Foto = foto
	} else {
		var body struct {
			Nome  string `json:"nome"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Erro ao atualizar o perfil", http.StatusBadRequest)
			return
		}
		upd.Nome = body.Nome
		upd.Email = body.Email
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, "Usuário não encontrado.", http.StatusNotFound)
			return
		}
		s.logger.Error(ctx, "updating profile", "error", err.Error())
		http.Error(w, "Erro ao atualizar o perfil", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Perfil atualizado com sucesso!",
		"user":    user,
	})
}

func (s *Server) handleRegisterPet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID, _ := userIDFrom(ctx)

	var pet models.Pet

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
			return
		}
		pet.Nome = r.FormValue("nome")
		pet.Idade, _ = strconv.Atoi(r.FormValue("idade"))
		pet.Tipo = r.FormValue("tipo")
		pet.ServicosProcurados = r.FormValue("servicosProcurados")

		foto, err := s.savePhoto(r)
		if err != nil {
			s.logger.Error(ctx, "saving photo", "error", err.Error())
			http.Error(w, "Erro ao salvar o pet", http.StatusInternalServerError)
			return
		}
		pet.Foto = foto
	} else {
		if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
			return
		}
	}

	if _, err := s.pets.Register(ctx, userID, &pet); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Campos obrigatórios não preenchidos", http.StatusBadRequest)
			return
		}
		s.logger.Error(ctx, "registering pet", "error", err.Error())
		http.Error(w, "Erro ao salvar o pet", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Pet cadastrado com sucesso!"})
}

func (s *Server) handleMyPets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID, _ := userIDFrom(ctx)

	pets, err := s.pets.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "listing pets", "error", err.Error())
		http.Error(w, "Erro ao buscar os pets do usuário.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pets)
}

func (s *Server) handleUploadProfilePhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID, _ := userIDFrom(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Nenhuma foto foi enviada.", http.StatusBadRequest)
		return
	}

	foto, err := s.savePhoto(r)
	if err != nil {
		s.logger.Error(ctx, "saving photo", "error", err.Error())
		http.Error(w, "Erro ao atualizar a foto do perfil", http.StatusInternalServerError)
		return
	}
	if foto == "" {
		http.Error(w, "Nenhuma foto foi enviada.", http.StatusBadRequest)
		return
	}

	user, err := s.users.SetPhoto(ctx, userID, foto)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, "Usuário não encontrado.", http.StatusNotFound)
			return
		}
		s.logger.Error(ctx, "updating photo", "error", err.Error())
		http.Error(w, "Erro ao atualizar a foto do perfil", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Foto do perfil atualizada com sucesso!",
		"foto":    user.Foto,
	})
}
