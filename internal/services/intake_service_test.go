package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
)

func testIntakeConfig() IntakeConfig {
	return IntakeConfig{
		FacePhotoExtensions: []string{"png", "jpg", "jpeg"},
		LicenseExtensions:   []string{"png", "jpg", "jpeg", "pdf"},
		MaxAttachmentBytes:  5 * 1024 * 1024,
		Nationalities:       config.DefaultNationalities,
	}
}

func completeInput() models.RegistrationInput {
	return models.RegistrationInput{
		Nome:              "  joão DA silva  ",
		Telefone:          "(21) 98765-4321",
		Email:             "  Joao@Example.COM ",
		TipoChavePix:      "CPF",
		ChavePix:          "12345678900",
		ValidacaoChavePix: "validada",
		Nacionalidade:     "Brasileiro",
		EstadoCivil:       "Solteiro",
		CPF:               "123.456.789-00",
		RG:                "12.345.678-9",
		DataNascimento:    "1990-05-10",
		CNPJ:              "",
		Cidade:            "Rio de Janeiro",
		Modal:             "Moto",
	}
}

func validAttachments() []models.Attachment {
	return []models.Attachment{
		{Field: models.AttachmentFotoRosto, Filename: "rosto.jpg", Size: 1024},
		{Field: models.AttachmentCNH, Filename: "cnh.pdf", Size: 2048},
	}
}

func TestValidateAndNormalizeSuccess(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	before := time.Now()
	entregador, rejections := v.ValidateAndNormalize(completeInput(), validAttachments())

	require.True(t, rejections.IsValid)
	require.NotNil(t, entregador)

	assert.Equal(t, "João Da Silva", entregador.Nome)
	assert.Equal(t, "21987654321", entregador.Telefone)
	assert.Equal(t, "joao@example.com", entregador.Email)
	assert.Equal(t, "12345678900", entregador.CPF)
	assert.Equal(t, "", entregador.CNPJ)
	assert.Equal(t, "Rio de Janeiro", entregador.Cidade)
	assert.Equal(t, "Moto", entregador.Modal)
	assert.Equal(t, "rosto.jpg", entregador.FotoRosto)
	assert.Equal(t, "cnh.pdf", entregador.CNH)
	assert.False(t, entregador.CreatedAt.Before(before))
	assert.False(t, entregador.CreatedAt.After(time.Now()))
}

func TestValidateAndNormalizeAllMissingFieldsReported(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	input := completeInput()
	input.Nome = ""
	input.Email = "   "
	input.Cidade = ""

	entregador, rejections := v.ValidateAndNormalize(input, validAttachments())

	assert.Nil(t, entregador)
	assert.False(t, rejections.IsValid)
	assert.Equal(t, 3, rejections.Len())

	fields := make([]string, 0, rejections.Len())
	for _, r := range rejections.Rejections {
		assert.Equal(t, models.RejectionMissingRequiredField, r.Kind)
		fields = append(fields, r.Field)
	}
	assert.Equal(t, []string{"nome", "email", "cidade"}, fields)
}

func TestValidateAndNormalizeCPFFormat(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"formatted 11 digits", "123.456.789-00", true},
		{"bare 11 digits", "12345678900", true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
	}

	v := NewIntakeValidator(testIntakeConfig(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := completeInput()
			input.CPF = tt.cpf

			entregador, rejections := v.ValidateAndNormalize(input, validAttachments())
			if tt.valid {
				assert.True(t, rejections.IsValid)
				require.NotNil(t, entregador)
			} else {
				assert.Nil(t, entregador)
				assert.True(t, rejections.HasKind(models.RejectionInvalidFormat))
			}
		})
	}
}

func TestValidateAndNormalizeCNPJOptional(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	t.Run("empty CNPJ accepted", func(t *testing.T) {
		input := completeInput()
		input.CNPJ = ""
		entregador, rejections := v.ValidateAndNormalize(input, validAttachments())
		assert.True(t, rejections.IsValid)
		require.NotNil(t, entregador)
	})

	t.Run("formatted 14 digits stored bare", func(t *testing.T) {
		input := completeInput()
		input.CNPJ = "12.345.678/0001-00"
		entregador, rejections := v.ValidateAndNormalize(input, validAttachments())
		require.True(t, rejections.IsValid)
		assert.Equal(t, "12345678000100", entregador.CNPJ)
	})

	t.Run("wrong digit count rejected", func(t *testing.T) {
		input := completeInput()
		input.CNPJ = "12345"
		entregador, rejections := v.ValidateAndNormalize(input, validAttachments())
		assert.Nil(t, entregador)
		assert.True(t, rejections.HasKind(models.RejectionInvalidFormat))
	})
}

func TestValidateAndNormalizeUnknownNationality(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	input := completeInput()
	input.Nacionalidade = "Marciano"

	entregador, rejections := v.ValidateAndNormalize(input, validAttachments())

	assert.Nil(t, entregador)
	require.Equal(t, 1, rejections.Len())
	assert.Equal(t, models.RejectionInvalidFormat, rejections.Rejections[0].Kind)
	assert.Equal(t, "nacionalidade", rejections.Rejections[0].Field)
}

func TestValidateAndNormalizeAttachmentsPreemptFields(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	// every field empty, but the bad attachment must be the only finding
	input := models.RegistrationInput{}
	attachments := []models.Attachment{
		{Field: models.AttachmentFotoRosto, Filename: "photo.gif", Size: 1024},
	}

	entregador, rejections := v.ValidateAndNormalize(input, attachments)

	assert.Nil(t, entregador)
	require.Equal(t, 1, rejections.Len())
	assert.Equal(t, models.RejectionAttachmentRejected, rejections.Rejections[0].Kind)
	assert.Equal(t, models.AttachmentFotoRosto, rejections.Rejections[0].Field)
}

func TestValidateAndNormalizeAttachmentSize(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	attachments := []models.Attachment{
		{Field: models.AttachmentFotoRosto, Filename: "rosto.jpg", Size: 6 * 1024 * 1024},
		{Field: models.AttachmentCNH, Filename: "cnh.pdf", Size: 1024},
	}

	entregador, rejections := v.ValidateAndNormalize(completeInput(), attachments)

	assert.Nil(t, entregador)
	require.Equal(t, 1, rejections.Len())
	assert.Equal(t, models.RejectionAttachmentRejected, rejections.Rejections[0].Kind)
	assert.Equal(t, models.AttachmentFotoRosto, rejections.Rejections[0].Field)
}

func TestValidateAndNormalizeUnknownAttachmentField(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	attachments := []models.Attachment{
		{Field: "comprovante", Filename: "doc.pdf", Size: 1024},
	}

	entregador, rejections := v.ValidateAndNormalize(completeInput(), attachments)

	assert.Nil(t, entregador)
	require.Equal(t, 1, rejections.Len())
	assert.Equal(t, models.RejectionAttachmentRejected, rejections.Rejections[0].Kind)
}

func TestValidateAndNormalizeLicenseAllowsPDF(t *testing.T) {
	v := NewIntakeValidator(testIntakeConfig(), nil)

	t.Run("pdf allowed for cnh", func(t *testing.T) {
		attachments := []models.Attachment{
			{Field: models.AttachmentCNH, Filename: "cnh.PDF", Size: 1024},
		}
		_, rejections := v.ValidateAndNormalize(completeInput(), attachments)
		assert.True(t, rejections.IsValid)
	})

	t.Run("pdf not allowed for foto_rosto", func(t *testing.T) {
		attachments := []models.Attachment{
			{Field: models.AttachmentFotoRosto, Filename: "rosto.pdf", Size: 1024},
		}
		entregador, rejections := v.ValidateAndNormalize(completeInput(), attachments)
		assert.Nil(t, entregador)
		assert.True(t, rejections.HasKind(models.RejectionAttachmentRejected))
	})
}
