package usecase

import (
	"context"
	"errors"
	"net"
	"strings"

	"casamento_presentes/internal/domain/entities"
)

// friendlyErrors holds the guest-facing copy for every category.
var friendlyErrors = map[entities.ErrorCategory]entities.FriendlyError{
	entities.ErrorCategoryNetwork: {
		Title:   "Problema de Conexão",
		Message: "Não foi possível conectar com o servidor. Verifique sua conexão com a internet e tente novamente.",
		Icon:    "🌐",
	},
	entities.ErrorCategoryServerUnavailable: {
		Title:   "Servidor Indisponível",
		Message: "O sistema de pagamentos está temporariamente indisponível. Tente novamente em alguns minutos.",
		Icon:    "🔧",
	},
	entities.ErrorCategoryPixGenerationFailed: {
		Title:   "Erro ao Gerar PIX",
		Message: "Não foi possível gerar o código PIX para seu presente. Verifique os dados e tente novamente.",
		Icon:    "💳",
	},
	entities.ErrorCategoryPixExpired: {
		Title:   "PIX Expirado",
		Message: "O código PIX expirou. Gere um novo código para continuar com a compra do presente.",
		Icon:    "⏰",
	},
	entities.ErrorCategoryCardInvalid: {
		Title:   "Dados do Cartão Inválidos",
		Message: "Por favor, verifique o número do cartão, CVV e data de validade. Todos os campos são obrigatórios.",
		Icon:    "💳",
	},
	entities.ErrorCategoryCardRejected: {
		Title:   "Pagamento Não Autorizado",
		Message: "O pagamento foi rejeitado pelo banco emissor. Tente outro cartão ou entre em contato com seu banco.",
		Icon:    "❌",
	},
	entities.ErrorCategoryInsufficientFunds: {
		Title:   "Saldo Insuficiente",
		Message: "Não há saldo disponível no cartão para esta compra. Tente outro cartão ou forma de pagamento.",
		Icon:    "💰",
	},
	entities.ErrorCategoryValidation: {
		Title:   "Informações Obrigatórias",
		Message: "Por favor, preencha todos os campos obrigatórios para continuar com a compra do presente.",
		Icon:    "📝",
	},
	entities.ErrorCategoryCustomerNameRequired: {
		Title:   "Nome Obrigatório",
		Message: "Por favor, informe seu nome para que possamos identificar quem está dando o presente.",
		Icon:    "👤",
	},
	entities.ErrorCategoryGiftUnavailable: {
		Title:   "Presente Indisponível",
		Message: "Este presente já foi escolhido por outro convidado. Escolha outro presente da lista.",
		Icon:    "🎁",
	},
	entities.ErrorCategoryGiftNotFound: {
		Title:   "Presente Não Encontrado",
		Message: "O presente selecionado não foi encontrado. Volte à lista e escolha outro presente.",
		Icon:    "🔍",
	},
	entities.ErrorCategoryMercadoPagoSDK: {
		Title:   "Erro no Sistema de Pagamento",
		Message: "Houve um problema ao carregar o sistema de pagamentos. Recarregue a página e tente novamente.",
		Icon:    "🔒",
	},
	entities.ErrorCategoryTimeout: {
		Title:   "Tempo Esgotado",
		Message: "A operação demorou mais que o esperado. Tente novamente.",
		Icon:    "⏱️",
	},
	entities.ErrorCategoryAuthInvalidCredentials: {
		Title:   "Credenciais Inválidas",
		Message: "Email ou senha incorretos. Confira os dados e tente novamente.",
		Icon:    "🔑",
	},
	entities.ErrorCategoryUserNotFound: {
		Title:   "Usuário Não Encontrado",
		Message: "Não encontramos uma conta com esse email. Verifique o endereço ou crie uma conta.",
		Icon:    "👤",
	},
	entities.ErrorCategoryEmailExists: {
		Title:   "Email Já Cadastrado",
		Message: "Este email já está em uso. Faça login ou use outro endereço.",
		Icon:    "📧",
	},
	entities.ErrorCategorySessionExpired: {
		Title:   "Sessão Expirada",
		Message: "Sua sessão expirou. Entre novamente para continuar.",
		Icon:    "⌛",
	},
	entities.ErrorCategoryUnauthorized: {
		Title:   "Acesso Não Autorizado",
		Message: "Você não tem permissão para realizar esta ação. Entre com uma conta autorizada.",
		Icon:    "🚫",
	},
	entities.ErrorCategoryWeakPassword: {
		Title:   "Senha Fraca",
		Message: "A senha escolhida é muito fraca. Use pelo menos 8 caracteres com letras e números.",
		Icon:    "🔐",
	},
	entities.ErrorCategoryRegistrationFailed: {
		Title:   "Erro no Cadastro",
		Message: "Não foi possível concluir seu cadastro. Tente novamente em alguns instantes.",
		Icon:    "📝",
	},
	entities.ErrorCategoryUnknown: {
		Title:   "Ops! Algo deu errado",
		Message: "Ocorreu um erro inesperado ao processar sua solicitação. Tente novamente ou entre em contato conosco.",
		Icon:    "⚠️",
	},
}

// structuredCodes maps backend error codes onto categories. Codes win over text
// heuristics when the backend sends them.
var structuredCodes = map[string]entities.ErrorCategory{
	"NETWORK_ERROR":          entities.ErrorCategoryNetwork,
	"SERVER_UNAVAILABLE":     entities.ErrorCategoryServerUnavailable,
	"PIX_ERROR":              entities.ErrorCategoryPixGenerationFailed,
	"PIX_GENERATION_FAILED":  entities.ErrorCategoryPixGenerationFailed,
	"PIX_EXPIRED":            entities.ErrorCategoryPixExpired,
	"CARD_INVALID":           entities.ErrorCategoryCardInvalid,
	"CARD_REJECTED":          entities.ErrorCategoryCardRejected,
	"CC_REJECTED":            entities.ErrorCategoryCardRejected,
	"INSUFFICIENT_FUNDS":     entities.ErrorCategoryInsufficientFunds,
	"INSUFFICIENT_AMOUNT":    entities.ErrorCategoryInsufficientFunds,
	"VALIDATION_ERROR":       entities.ErrorCategoryValidation,
	"CUSTOMER_NAME_REQUIRED": entities.ErrorCategoryCustomerNameRequired,
	"GIFT_UNAVAILABLE":       entities.ErrorCategoryGiftUnavailable,
	"GIFT_NOT_FOUND":         entities.ErrorCategoryGiftNotFound,
	"MERCADOPAGO_SDK_ERROR":  entities.ErrorCategoryMercadoPagoSDK,
	"TIMEOUT_ERROR":          entities.ErrorCategoryTimeout,
	"INVALID_CREDENTIALS":    entities.ErrorCategoryAuthInvalidCredentials,
	"USER_NOT_FOUND":         entities.ErrorCategoryUserNotFound,
	"EMAIL_EXISTS":           entities.ErrorCategoryEmailExists,
	"SESSION_EXPIRED":        entities.ErrorCategorySessionExpired,
	"UNAUTHORIZED":           entities.ErrorCategoryUnauthorized,
	"WEAK_PASSWORD":          entities.ErrorCategoryWeakPassword,
	"REGISTRATION_FAILED":    entities.ErrorCategoryRegistrationFailed,
}

type statusCoder interface {
	StatusCode() int
}

type errorCoder interface {
	ErrorCode() string
}

// ClassifyError maps any error into a FriendlyError. It never returns a zero value
// and has no side effects.
func ClassifyError(err error) entities.FriendlyError {
	return friendlyErrorFor(classifyCategory(err))
}

// CanRetry reports whether the guest may retry an operation that failed with the category.
func CanRetry(category entities.ErrorCategory) bool {
	return category != entities.ErrorCategoryCardRejected && category != entities.ErrorCategoryInsufficientFunds
}

func friendlyErrorFor(category entities.ErrorCategory) entities.FriendlyError {
	fe, ok := friendlyErrors[category]
	if !ok {
		category = entities.ErrorCategoryUnknown
		fe = friendlyErrors[category]
	}
	fe.Category = category
	fe.CanRetry = CanRetry(category)
	return fe
}

// classifyCategory checks, in order: a known structured code, a deadline
// anywhere in the chain, permanent declines, insufficient funds, network
// failures, then the remaining message and status rules. A deadline wrapped in
// a "network error" from the backend client is therefore a timeout.
func classifyCategory(err error) entities.ErrorCategory {
	if err == nil {
		return entities.ErrorCategoryUnknown
	}

	var coder errorCoder
	if errors.As(err, &coder) {
		if c, ok := structuredCodes[strings.ToUpper(strings.TrimSpace(coder.ErrorCode()))]; ok {
			return c
		}
	}

	status := 0
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	msg := strings.ToLower(err.Error())

	if errors.Is(err, context.DeadlineExceeded) {
		return entities.ErrorCategoryTimeout
	}

	// Permanent declines are checked first so they are never reported as retryable.
	if status == 402 || containsAny(msg, "rejected", "rejeitado", "recusado") {
		return entities.ErrorCategoryCardRejected
	}
	if containsAny(msg, "insufficient", "saldo") {
		return entities.ErrorCategoryInsufficientFunds
	}

	var netErr net.Error
	if containsAny(msg, "fetch", "network", "conexão", "connection refused", "no such host", "servidor backend não encontrado") ||
		(errors.As(err, &netErr) && !netErr.Timeout()) {
		return entities.ErrorCategoryNetwork
	}
	if errors.As(err, &netErr) && netErr.Timeout() {
		return entities.ErrorCategoryTimeout
	}

	if c, ok := classifyAuth(msg, status); ok {
		return c
	}

	if status >= 500 || containsAny(msg, "server error", "internal") {
		return entities.ErrorCategoryServerUnavailable
	}

	if containsAny(msg, "expir") {
		return entities.ErrorCategoryPixExpired
	}
	if containsAny(msg, "pix", "qr code") {
		return entities.ErrorCategoryPixGenerationFailed
	}

	if containsAny(msg, "cartão", "card", "token") {
		return entities.ErrorCategoryCardInvalid
	}

	if strings.Contains(msg, "nome") && strings.Contains(msg, "obrigatório") {
		return entities.ErrorCategoryCustomerNameRequired
	}

	if strings.Contains(msg, "presente") && strings.Contains(msg, "indisponível") {
		return entities.ErrorCategoryGiftUnavailable
	}
	if strings.Contains(msg, "presente") && strings.Contains(msg, "não encontrado") {
		return entities.ErrorCategoryGiftNotFound
	}

	if containsAny(msg, "mercadopago", "mercado pago", "sdk", "script") {
		return entities.ErrorCategoryMercadoPagoSDK
	}

	if status == 400 || status == 422 || containsAny(msg, "obrigatório", "required", "validation", "maior que zero") {
		return entities.ErrorCategoryValidation
	}

	if containsAny(msg, "timeout", "tempo") {
		return entities.ErrorCategoryTimeout
	}

	return entities.ErrorCategoryUnknown
}

func classifyAuth(msg string, status int) (entities.ErrorCategory, bool) {
	switch {
	case containsAny(msg, "sessão expirada", "session expired", "token expired", "jwt expired"):
		return entities.ErrorCategorySessionExpired, true
	case containsAny(msg, "email ou senha incorretos", "invalid credentials", "credenciais inválidas"):
		return entities.ErrorCategoryAuthInvalidCredentials, true
	case containsAny(msg, "usuário não encontrado", "user not found"):
		return entities.ErrorCategoryUserNotFound, true
	case containsAny(msg, "já está em uso", "email already", "already registered"):
		return entities.ErrorCategoryEmailExists, true
	case containsAny(msg, "senha fraca", "weak password", "password too weak"):
		return entities.ErrorCategoryWeakPassword, true
	case containsAny(msg, "registration failed", "erro ao registrar", "falha no cadastro"):
		return entities.ErrorCategoryRegistrationFailed, true
	case status == 401 || status == 403 || containsAny(msg, "unauthorized", "não autorizado", "forbidden"):
		return entities.ErrorCategoryUnauthorized, true
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
