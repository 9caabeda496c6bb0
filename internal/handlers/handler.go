package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"zk-proving-service/pkg/logger"
)

type ProvingHandler struct {
	service *ProvingService
}

func NewProvingHandler(service *ProvingService) *ProvingHandler {
	return &ProvingHandler{service: service}
}

// Deploy godoc
// @Summary      Deploy a program
// @Description  Queues a program for asynchronous deployment to the ledger
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.DeployIn  true  "Program source"
// @Success      202  {object}  handlers.DeployOut
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/programs/deploy [post]
func (h *ProvingHandler) Deploy(c *gin.Context) {
	var in DeployIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.RequestDeployment(in)
	if err != nil {
		logger.Default().Error(err, "Deployment request rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, out)
}

// DeploymentStatus godoc
// @Summary      Get deployment status
// @Description  Returns the state of a queued deployment by its event id
// @Tags         Programs
// @Produce      json
// @Param        event_id  path      string  true  "Deployment event id"
// @Success      200  {object}  handlers.DeploymentStatusOut
// @Failure      404  {object}  map[string]string
// @Router       /v1/deployments/{event_id} [get]
func (h *ProvingHandler) DeploymentStatus(c *gin.Context) {
	eventId := c.Param("event_id")

	out, err := h.service.DeploymentStatus(eventId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown deployment event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ListDeployments godoc
// @Summary      List deployments of a program
// @Tags         Programs
// @Produce      json
// @Param        checksum  path      string  true  "Program checksum"
// @Success      200  {object}  handlers.DeploymentListOut
// @Router       /v1/programs/{checksum}/deployments [get]
func (h *ProvingHandler) ListDeployments(c *gin.Context) {
	out, err := h.service.ListDeployments(c.Param("checksum"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ListExecutions godoc
// @Summary      List executions of a program function
// @Tags         Programs
// @Produce      json
// @Param        checksum  path      string  true  "Program checksum"
// @Param        function  path      string  true  "Function name"
// @Success      200  {object}  handlers.ExecutionListOut
// @Router       /v1/programs/{checksum}/executions/{function} [get]
func (h *ProvingHandler) ListExecutions(c *gin.Context) {
	out, err := h.service.ListExecutions(c.Param("checksum"), c.Param("function"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// EstimateFee godoc
// @Summary      Estimate deployment fee
// @Description  Prices the ledger rent and transaction fee for a program
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.FeeEstimateIn  true  "Program source"
// @Success      200  {object}  handlers.FeeEstimateOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/programs/fee-estimate [post]
func (h *ProvingHandler) EstimateFee(c *gin.Context) {
	var in FeeEstimateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.EstimateDeploymentFee(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// SynthesizeKeys godoc
// @Summary      Synthesize proving and verifying keys
// @Description  Compiles a function circuit and caches its key material
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.SynthesizeIn  true  "Program source and function"
// @Success      200  {object}  handlers.SynthesizeOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/programs/synthesize [post]
func (h *ProvingHandler) SynthesizeKeys(c *gin.Context) {
	var in SynthesizeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.SynthesizeKeys(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// Execute godoc
// @Summary      Execute a program function
// @Description  Generates a proof over the given inputs without touching the ledger
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.ExecuteIn  true  "Program source, function and inputs"
// @Success      200  {object}  handlers.ExecuteOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/programs/execute [post]
func (h *ProvingHandler) Execute(c *gin.Context) {
	var in ExecuteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.Execute(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// VerifyExecution godoc
// @Summary      Verify an execution proof
// @Description  Checks an execution blob against the program it claims to prove
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.VerifyIn  true  "Program source, function and execution blob"
// @Success      200  {object}  handlers.VerifyOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/programs/verify [post]
func (h *ProvingHandler) VerifyExecution(c *gin.Context) {
	var in VerifyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.VerifyExecution(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ParseRecord godoc
// @Summary      Parse a record plaintext
// @Description  Validates a record string and returns its canonical form
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.RecordParseIn  true  "Record plaintext"
// @Success      200  {object}  handlers.RecordParseOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/records/parse [post]
func (h *ProvingHandler) ParseRecord(c *gin.Context) {
	var in RecordParseIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.ParseRecord(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// RecordSerialNumber godoc
// @Summary      Derive a record serial number
// @Description  Derives the spend marker of a record for its owning account
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.SerialNumberIn  true  "Record, owner key and record type"
// @Success      200  {object}  handlers.SerialNumberOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/records/serial-number [post]
func (h *ProvingHandler) RecordSerialNumber(c *gin.Context) {
	var in SerialNumberIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.RecordSerialNumber(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// NewAccount godoc
// @Summary      Create an account
// @Description  Generates a key pair, optionally from a seed, optionally sealed with a secret
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.NewAccountIn  false  "Optional seed and secret"
// @Success      201  {object}  handlers.AccountOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/accounts [post]
func (h *ProvingHandler) NewAccount(c *gin.Context) {
	var in NewAccountIn
	if err := c.ShouldBindJSON(&in); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.NewAccount(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, out)
}

// DecryptAccount godoc
// @Summary      Decrypt an account ciphertext
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.DecryptAccountIn  true  "Ciphertext and secret"
// @Success      200  {object}  handlers.AccountOut
// @Failure      401  {object}  map[string]string
// @Router       /v1/accounts/decrypt [post]
func (h *ProvingHandler) DecryptAccount(c *gin.Context) {
	var in DecryptAccountIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.DecryptAccount(in)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// Sign godoc
// @Summary      Sign a message
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.SignIn  true  "Private key and message"
// @Success      200  {object}  handlers.SignOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/accounts/sign [post]
func (h *ProvingHandler) Sign(c *gin.Context) {
	var in SignIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.Sign(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// VerifySignature godoc
// @Summary      Verify a signature
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.VerifySignatureIn  true  "Address, message and signature"
// @Success      200  {object}  handlers.VerifySignatureOut
// @Failure      422  {object}  map[string]string
// @Router       /v1/accounts/verify-signature [post]
func (h *ProvingHandler) VerifySignature(c *gin.Context) {
	var in VerifySignatureIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.VerifySignature(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
