package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"github.com/prefeitura-rio/app-entregadores/internal/observability"
	"github.com/prefeitura-rio/app-entregadores/internal/services"
	"github.com/prefeitura-rio/app-entregadores/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// attachment form fields accepted on registration
var attachmentFields = []string{models.AttachmentFotoRosto, models.AttachmentCNH}

// PostEntregador godoc
// @Summary Cadastrar entregador
// @Description Recebe o formulário multipart de cadastro, valida e normaliza os campos, armazena os anexos aceitos e persiste o perfil. Todos os problemas de validação são retornados de uma vez.
// @Tags entregador
// @Accept multipart/form-data
// @Produce json
// @Param nome formData string true "Nome completo"
// @Param telefone formData string true "Telefone"
// @Param email formData string true "Email"
// @Param tipo_chave_pix formData string true "Tipo da chave PIX"
// @Param chave_pix formData string true "Chave PIX"
// @Param validacao_chave_pix formData string true "Validação da chave PIX"
// @Param nacionalidade formData string true "Nacionalidade"
// @Param estado_civil formData string true "Estado civil"
// @Param cpf formData string true "CPF (11 dígitos)"
// @Param rg formData string true "RG"
// @Param data_nascimento formData string true "Data de nascimento"
// @Param cnpj formData string false "CNPJ (14 dígitos, opcional)"
// @Param cidade formData string true "Cidade"
// @Param modal formData string true "Modal (Moto/Bicicleta)"
// @Param foto_rosto formData file false "Foto do rosto (png, jpg, jpeg)"
// @Param cnh formData file false "CNH (png, jpg, jpeg, pdf)"
// @Success 201 {object} models.EntregadorResponse "Cadastro realizado com sucesso"
// @Failure 400 {object} RejectionResponse "Submissão rejeitada pela validação"
// @Failure 409 {object} RejectionResponse "CPF já cadastrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /entregadores [post]
func PostEntregador(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "PostEntregador")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "post_entregador"),
		attribute.String("service", "entregador"),
	)

	if services.IntakeValidatorInstance == nil || services.EntregadorServiceInstance == nil {
		logger.Error("entregador services not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Registration service unavailable"})
		return
	}

	// Parse form fields with tracing
	ctx, parseSpan := utils.TraceInputParsing(ctx, "registration_form")
	var input models.RegistrationInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{
			"content_type": c.ContentType(),
		})
		parseSpan.End()
		logger.Error("failed to bind registration form", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data"})
		return
	}

	// Collect attachment metadata; content is only read after validation
	attachments := make([]models.Attachment, 0, len(attachmentFields))
	for _, field := range attachmentFields {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			continue
		}
		attachments = append(attachments, models.Attachment{
			Field:    field,
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
		})
	}
	utils.AddSpanAttribute(parseSpan, "attachments", len(attachments))
	parseSpan.End()

	// Validate and normalize with tracing
	ctx, validateSpan := utils.TraceBusinessLogic(ctx, "intake_validation")
	entregador, rejections := services.IntakeValidatorInstance.ValidateAndNormalize(input, attachments)
	if !rejections.IsValid {
		utils.AddSpanAttribute(validateSpan, "rejections", rejections.Len())
		validateSpan.End()

		for _, r := range rejections.Rejections {
			observability.RegistrationRejections.WithLabelValues(string(r.Kind)).Inc()
		}
		observability.RegistrationSubmissions.WithLabelValues("rejected").Inc()

		logger.Info("registration rejected",
			zap.Int("rejections", rejections.Len()))
		c.JSON(http.StatusBadRequest, RejectionResponse{
			Error:      "Submission rejected",
			Rejections: rejections.Rejections,
		})
		return
	}
	validateSpan.End()

	// Store accepted attachments and take their stable references
	for _, att := range attachments {
		fileHeader, err := c.FormFile(att.Field)
		if err != nil {
			continue
		}
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("failed to open attachment", zap.String("field", att.Field), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store attachment"})
			return
		}

		ref, err := services.AttachmentStoreInstance.Save(ctx, att.Field, att.Filename, file)
		file.Close()
		if err != nil {
			logger.Error("failed to store attachment", zap.String("field", att.Field), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store attachment"})
			return
		}

		switch att.Field {
		case models.AttachmentFotoRosto:
			entregador.FotoRosto = ref
		case models.AttachmentCNH:
			entregador.CNH = ref
		}
	}

	// Persist with tracing; uniqueness conflicts map into the same
	// rejection vocabulary the pipeline uses
	ctx, insertSpan := utils.TraceDatabaseInsert(ctx, "entregadores")
	if err := services.EntregadorServiceInstance.Register(ctx, entregador); err != nil {
		if err == models.ErrDuplicateCPF {
			insertSpan.End()
			observability.RegistrationRejections.WithLabelValues(string(models.RejectionDuplicateKey)).Inc()
			observability.RegistrationSubmissions.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusConflict, RejectionResponse{
				Error:      "Submission rejected",
				Rejections: models.DuplicateCPFRejection().Rejections,
			})
			return
		}
		utils.RecordErrorInSpan(insertSpan, err, map[string]interface{}{
			"operation": "register_entregador",
		})
		insertSpan.End()
		observability.RegistrationSubmissions.WithLabelValues("error").Inc()
		logger.Error("failed to register entregador", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register entregador"})
		return
	}
	insertSpan.End()

	observability.RegistrationSubmissions.WithLabelValues("success").Inc()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "created")
	response := entregador.ToResponse()
	response.TelefoneFormatado = utils.FormatTelefoneBR(entregador.Telefone)
	c.JSON(http.StatusCreated, response)
	responseSpan.End()

	logger.Debug("PostEntregador completed",
		zap.String("cpf", observability.MaskCPF(entregador.CPF)),
		zap.Duration("total_duration", time.Since(startTime)),
		zap.String("status", "success"))
}

// GetEntregadores godoc
// @Summary Listar entregadores
// @Description Recupera todos os entregadores cadastrados.
// @Tags entregador
// @Produce json
// @Success 200 {object} models.EntregadoresListResponse "Lista de entregadores"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /entregadores [get]
func GetEntregadores(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetEntregadores")
	defer span.End()

	logger := observability.Logger()

	if services.EntregadorServiceInstance == nil {
		logger.Error("entregador service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Entregador service unavailable"})
		return
	}

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "entregadores", "all")
	entregadores, err := services.EntregadorServiceInstance.List(ctx)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "list_entregadores",
		})
		querySpan.End()
		logger.Error("failed to list entregadores", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve entregadores"})
		return
	}
	utils.AddSpanAttribute(querySpan, "total", len(entregadores))
	querySpan.End()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	data := make([]models.EntregadorResponse, 0, len(entregadores))
	for i := range entregadores {
		response := entregadores[i].ToResponse()
		response.TelefoneFormatado = utils.FormatTelefoneBR(entregadores[i].Telefone)
		data = append(data, response)
	}
	c.JSON(http.StatusOK, models.EntregadoresListResponse{Data: data, Total: len(data)})
	responseSpan.End()

	logger.Debug("GetEntregadores completed",
		zap.Int("total", len(data)),
		zap.Duration("total_duration", time.Since(startTime)))
}

// GetEntregador godoc
// @Summary Obter entregador por CPF
// @Description Recupera um entregador cadastrado pelo CPF (11 dígitos).
// @Tags entregador
// @Produce json
// @Param cpf path string true "CPF do entregador (11 dígitos)" minLength(11) maxLength(14)
// @Success 200 {object} models.EntregadorResponse "Entregador obtido com sucesso"
// @Failure 400 {object} ErrorResponse "Formato de CPF inválido"
// @Failure 404 {object} ErrorResponse "Entregador não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /entregadores/{cpf} [get]
func GetEntregador(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetEntregador")
	defer span.End()

	cpf := c.Param("cpf")
	logger := observability.Logger().With(zap.String("cpf", observability.MaskCPF(utils.StripNonDigits(cpf))))

	span.SetAttributes(
		attribute.String("operation", "get_entregador"),
		attribute.String("service", "entregador"),
	)

	ctx, cpfSpan := utils.TraceInputValidation(ctx, "cpf_format", "cpf")
	if !utils.ValidateCPF(cpf) {
		cpfSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid CPF format"})
		return
	}
	cpfSpan.End()

	if services.EntregadorServiceInstance == nil {
		logger.Error("entregador service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Entregador service unavailable"})
		return
	}

	ctx, querySpan := utils.TraceDatabaseFind(ctx, "entregadores", "cpf")
	entregador, err := services.EntregadorServiceInstance.GetByCPF(ctx, utils.StripNonDigits(cpf))
	if err != nil {
		querySpan.End()
		if err == models.ErrEntregadorNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entregador not found"})
			return
		}
		logger.Error("failed to get entregador", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve entregador"})
		return
	}
	querySpan.End()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	response := entregador.ToResponse()
	response.TelefoneFormatado = utils.FormatTelefoneBR(entregador.Telefone)
	c.JSON(http.StatusOK, response)
	responseSpan.End()

	logger.Debug("GetEntregador completed",
		zap.Duration("total_duration", time.Since(startTime)))
}
