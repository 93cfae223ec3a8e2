package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entregador represents a registered delivery worker. A document is written
// exactly once, by the intake pipeline, and never mutated afterwards.
type Entregador struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome              string             `bson:"nome" json:"nome"`
	Telefone          string             `bson:"telefone" json:"telefone"`
	Email             string             `bson:"email" json:"email"`
	TipoChavePix      string             `bson:"tipo_chave_pix" json:"tipo_chave_pix"`
	ChavePix          string             `bson:"chave_pix" json:"chave_pix"`
	ValidacaoChavePix string             `bson:"validacao_chave_pix" json:"validacao_chave_pix"`
	Nacionalidade     string             `bson:"nacionalidade" json:"nacionalidade"`
	EstadoCivil       string             `bson:"estado_civil" json:"estado_civil"`
	CPF               string             `bson:"cpf" json:"cpf"`
	RG                string             `bson:"rg" json:"rg"`
	DataNascimento    string             `bson:"data_nascimento" json:"data_nascimento"`
	CNPJ              string             `bson:"cnpj,omitempty" json:"cnpj,omitempty"`
	Cidade            string             `bson:"cidade" json:"cidade"`
	Modal             string             `bson:"modal" json:"modal"`
	FotoRosto         string             `bson:"foto_rosto,omitempty" json:"foto_rosto,omitempty"`
	CNH               string             `bson:"cnh,omitempty" json:"cnh,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// RegistrationInput carries the raw, untrusted form fields of a registration
// submission. Values are normalized and validated by the intake pipeline.
type RegistrationInput struct {
	Nome              string `form:"nome" json:"nome"`
	Telefone          string `form:"telefone" json:"telefone"`
	Email             string `form:"email" json:"email"`
	TipoChavePix      string `form:"tipo_chave_pix" json:"tipo_chave_pix"`
	ChavePix          string `form:"chave_pix" json:"chave_pix"`
	ValidacaoChavePix string `form:"validacao_chave_pix" json:"validacao_chave_pix"`
	Nacionalidade     string `form:"nacionalidade" json:"nacionalidade"`
	EstadoCivil       string `form:"estado_civil" json:"estado_civil"`
	CPF               string `form:"cpf" json:"cpf"`
	RG                string `form:"rg" json:"rg"`
	DataNascimento    string `form:"data_nascimento" json:"data_nascimento"`
	CNPJ              string `form:"cnpj" json:"cnpj"`
	Cidade            string `form:"cidade" json:"cidade"`
	Modal             string `form:"modal" json:"modal"`
}

// Attachment kinds accepted by the registration form.
const (
	AttachmentFotoRosto = "foto_rosto"
	AttachmentCNH       = "cnh"
)

// Attachment is the metadata of an uploaded file. The content itself is
// streamed to the attachment store by the handler; the intake pipeline only
// inspects name and size.
type Attachment struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// EntregadorResponse represents the response format for entregador endpoints
type EntregadorResponse struct {
	ID                string    `json:"id"`
	Nome              string    `json:"nome"`
	Telefone          string    `json:"telefone"`
	TelefoneFormatado string    `json:"telefone_formatado,omitempty"`
	Email             string    `json:"email"`
	TipoChavePix      string    `json:"tipo_chave_pix"`
	ChavePix          string    `json:"chave_pix"`
	ValidacaoChavePix string    `json:"validacao_chave_pix"`
	Nacionalidade     string    `json:"nacionalidade"`
	EstadoCivil       string    `json:"estado_civil"`
	CPF               string    `json:"cpf"`
	RG                string    `json:"rg"`
	DataNascimento    string    `json:"data_nascimento"`
	CNPJ              string    `json:"cnpj,omitempty"`
	Cidade            string    `json:"cidade"`
	Modal             string    `json:"modal"`
	FotoRosto         string    `json:"foto_rosto,omitempty"`
	CNH               string    `json:"cnh,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// EntregadoresListResponse represents the response for listing entregadores
type EntregadoresListResponse struct {
	Data  []EntregadorResponse `json:"data"`
	Total int                  `json:"total"`
}

// ToResponse converts an Entregador model to EntregadorResponse
func (e *Entregador) ToResponse() EntregadorResponse {
	return EntregadorResponse{
		ID:                e.ID.Hex(),
		Nome:              e.Nome,
		Telefone:          e.Telefone,
		Email:             e.Email,
		TipoChavePix:      e.TipoChavePix,
		ChavePix:          e.ChavePix,
		ValidacaoChavePix: e.ValidacaoChavePix,
		Nacionalidade:     e.Nacionalidade,
		EstadoCivil:       e.EstadoCivil,
		CPF:               e.CPF,
		RG:                e.RG,
		DataNascimento:    e.DataNascimento,
		CNPJ:              e.CNPJ,
		Cidade:            e.Cidade,
		Modal:             e.Modal,
		FotoRosto:         e.FotoRosto,
		CNH:               e.CNH,
		CreatedAt:         e.CreatedAt,
	}
}
