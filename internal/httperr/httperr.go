package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond converts a use-case error into the JSON error envelope.
// Unknown errors are reported as a generic persistence failure.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, CodePersistence, "Falha na comunicação com o servidor. Tente novamente.")
		return
	}

	status, message := describe(be.Code)
	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Field:   be.Field,
	})
}

func describe(code string) (int, string) {
	switch code {
	case CodeSlotTaken:
		return http.StatusConflict, "Outro cliente acabou de reservar este horário. Por favor, escolha outro."
	case CodeValidation:
		return http.StatusBadRequest, "Preencha todos os dados corretamente."
	case CodeSecurityDenied:
		return http.StatusForbidden, "Acesso negado: senha incorreta."
	case CodeNotFound:
		return http.StatusNotFound, "Registro não encontrado."
	case CodeInvalidState:
		return http.StatusConflict, "Operação não permitida para o status atual."
	case CodeUploadsDisabled:
		return http.StatusServiceUnavailable, "Upload de imagens não configurado."
	case CodeInvalidImage:
		return http.StatusBadRequest, "Imagem inválida."
	case CodeInvalidLogin:
		return http.StatusUnauthorized, "E-mail ou senha inválidos."
	case CodeInvalidToken:
		return http.StatusUnauthorized, "Sessão expirada."
	case CodeConfirmationText:
		return http.StatusBadRequest, "Frase de segurança incorreta. Abortando operação."
	default:
		return http.StatusBadRequest, "Requisição inválida."
	}
}
