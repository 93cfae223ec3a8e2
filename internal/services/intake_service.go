package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/logging"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"github.com/prefeitura-rio/app-entregadores/internal/observability"
	"github.com/prefeitura-rio/app-entregadores/internal/utils"
	"go.uber.org/zap"
)

// IntakeConfig holds every tunable the intake pipeline depends on. It is
// passed in explicitly at construction instead of being read from globals.
type IntakeConfig struct {
	FacePhotoExtensions []string
	LicenseExtensions   []string
	MaxAttachmentBytes  int64
	Nationalities       []string
}

// IntakeConfigFromApp builds an IntakeConfig from the loaded app configuration
func IntakeConfigFromApp(cfg *config.Config) IntakeConfig {
	return IntakeConfig{
		FacePhotoExtensions: cfg.FacePhotoExtensions,
		LicenseExtensions:   cfg.LicenseExtensions,
		MaxAttachmentBytes:  cfg.MaxAttachmentBytes,
		Nationalities:       cfg.Nationalities,
	}
}

// IntakeValidator turns a raw registration submission into either an
// Entregador ready for persistence or a complete list of rejections. It never
// touches storage; persistence and CPF uniqueness belong to the store.
type IntakeValidator struct {
	cfg    IntakeConfig
	logger *logging.SafeLogger
}

// NewIntakeValidator creates a new intake validator
func NewIntakeValidator(cfg IntakeConfig, logger *logging.SafeLogger) *IntakeValidator {
	return &IntakeValidator{
		cfg:    cfg,
		logger: logger,
	}
}

// Global intake validator instance
var IntakeValidatorInstance *IntakeValidator

// InitIntakeValidator initializes the global intake validator instance
func InitIntakeValidator() {
	IntakeValidatorInstance = NewIntakeValidator(IntakeConfigFromApp(config.AppConfig), logging.Logger)
	logging.Logger.Info("intake validator initialized",
		zap.Int64("max_attachment_bytes", config.AppConfig.MaxAttachmentBytes),
		zap.Int("nationalities", len(config.AppConfig.Nationalities)))
}

// mandatory fields, in the order their rejections are reported
var mandatoryFields = []string{
	"nome",
	"telefone",
	"email",
	"tipo_chave_pix",
	"chave_pix",
	"validacao_chave_pix",
	"nacionalidade",
	"estado_civil",
	"cpf",
	"rg",
	"data_nascimento",
	"cidade",
	"modal",
}

// ValidateAndNormalize runs the full intake pipeline. Attachment problems
// preempt field validation entirely, so no partial attachment state is ever
// persisted for a submission that is going to be refused. Field problems are
// accumulated across steps: the submitter always gets the complete list.
func (v *IntakeValidator) ValidateAndNormalize(input models.RegistrationInput, attachments []models.Attachment) (*models.Entregador, *models.RejectionList) {
	rejections := models.NewRejectionList()

	// Step 1: attachments, checked independently of each other
	for _, att := range attachments {
		v.checkAttachment(att, rejections)
	}
	if !rejections.IsValid {
		v.logger.Debug("submission refused on attachments",
			zap.Int("rejections", rejections.Len()))
		return nil, rejections
	}

	// Step 2: normalization, pure and infallible
	normalized := normalizeInput(input)

	// Step 3: every mandatory field, not just the first missing one
	values := fieldValues(normalized)
	for _, field := range mandatoryFields {
		if values[field] == "" {
			rejections.AddMissingField(field)
		}
	}

	// Step 4: format checks, reported together with step 3 findings
	if normalized.CPF != "" && !utils.ValidateCPF(normalized.CPF) {
		rejections.AddInvalidFormat("cpf", "cpf must contain exactly 11 digits")
	}
	if normalized.CNPJ != "" && !utils.ValidateCNPJ(normalized.CNPJ) {
		rejections.AddInvalidFormat("cnpj", "cnpj must contain exactly 14 digits")
	}
	if normalized.Nacionalidade != "" && !v.isKnownNationality(normalized.Nacionalidade) {
		rejections.AddInvalidFormat("nacionalidade", "nacionalidade is not in the recognized list")
	}

	if !rejections.IsValid {
		v.logger.Debug("submission refused on fields",
			zap.Int("rejections", rejections.Len()))
		return nil, rejections
	}

	// Step 5: assemble the profile. CPF and CNPJ are stored as bare digit
	// strings so the unique index treats formatted and unformatted
	// submissions of the same document as the same key.
	entregador := &models.Entregador{
		Nome:              normalized.Nome,
		Telefone:          normalized.Telefone,
		Email:             normalized.Email,
		TipoChavePix:      normalized.TipoChavePix,
		ChavePix:          normalized.ChavePix,
		ValidacaoChavePix: normalized.ValidacaoChavePix,
		Nacionalidade:     normalized.Nacionalidade,
		EstadoCivil:       normalized.EstadoCivil,
		CPF:               utils.StripNonDigits(normalized.CPF),
		RG:                normalized.RG,
		DataNascimento:    normalized.DataNascimento,
		CNPJ:              utils.StripNonDigits(normalized.CNPJ),
		Cidade:            normalized.Cidade,
		Modal:             normalized.Modal,
		CreatedAt:         time.Now(),
	}

	for _, att := range attachments {
		switch att.Field {
		case models.AttachmentFotoRosto:
			entregador.FotoRosto = SanitizeFilename(att.Filename)
		case models.AttachmentCNH:
			entregador.CNH = SanitizeFilename(att.Filename)
		}
	}

	v.logger.Debug("submission validated",
		zap.String("cpf", observability.MaskCPF(utils.StripNonDigits(entregador.CPF))),
		zap.String("cidade", entregador.Cidade))

	return entregador, rejections
}

// checkAttachment validates a single attachment's extension and size
func (v *IntakeValidator) checkAttachment(att models.Attachment, rejections *models.RejectionList) {
	var allowed []string
	switch att.Field {
	case models.AttachmentFotoRosto:
		allowed = v.cfg.FacePhotoExtensions
	case models.AttachmentCNH:
		allowed = v.cfg.LicenseExtensions
	default:
		rejections.AddAttachmentRejected(att.Field, "unknown attachment field")
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(att.Filename), "."))
	if !containsString(allowed, ext) {
		rejections.AddAttachmentRejected(att.Field,
			fmt.Sprintf("extension %q not allowed, expected one of %s", ext, strings.Join(allowed, ", ")))
	}
	if att.Size > v.cfg.MaxAttachmentBytes {
		rejections.AddAttachmentRejected(att.Field,
			fmt.Sprintf("file exceeds maximum size of %d bytes", v.cfg.MaxAttachmentBytes))
	}
}

func (v *IntakeValidator) isKnownNationality(nacionalidade string) bool {
	return containsString(v.cfg.Nationalities, nacionalidade)
}

// normalizeInput applies the storage normalization rules to a submission
func normalizeInput(input models.RegistrationInput) models.RegistrationInput {
	return models.RegistrationInput{
		Nome:              utils.NormalizeNome(input.Nome),
		Telefone:          utils.NormalizeTelefone(input.Telefone),
		Email:             utils.NormalizeEmail(input.Email),
		TipoChavePix:      strings.TrimSpace(input.TipoChavePix),
		ChavePix:          strings.TrimSpace(input.ChavePix),
		ValidacaoChavePix: strings.TrimSpace(input.ValidacaoChavePix),
		Nacionalidade:     strings.TrimSpace(input.Nacionalidade),
		EstadoCivil:       strings.TrimSpace(input.EstadoCivil),
		CPF:               strings.TrimSpace(input.CPF),
		RG:                strings.TrimSpace(input.RG),
		DataNascimento:    strings.TrimSpace(input.DataNascimento),
		CNPJ:              strings.TrimSpace(input.CNPJ),
		Cidade:            strings.TrimSpace(input.Cidade),
		Modal:             strings.TrimSpace(input.Modal),
	}
}

// fieldValues maps form field names to their normalized values
func fieldValues(input models.RegistrationInput) map[string]string {
	return map[string]string{
		"nome":                input.Nome,
		"telefone":            input.Telefone,
		"email":               input.Email,
		"tipo_chave_pix":      input.TipoChavePix,
		"chave_pix":           input.ChavePix,
		"validacao_chave_pix": input.ValidacaoChavePix,
		"nacionalidade":       input.Nacionalidade,
		"estado_civil":        input.EstadoCivil,
		"cpf":                 input.CPF,
		"rg":                  input.RG,
		"data_nascimento":     input.DataNascimento,
		"cidade":              input.Cidade,
		"modal":               input.Modal,
	}
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
