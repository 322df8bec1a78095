package system

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/system"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/logger"
	"github.com/BruksfildServices01/cutcorp-booking/internal/metrics"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// ConfirmationPhrase must be typed verbatim to run a wipe.
const ConfirmationPhrase = "apagar"

// Reauthenticator re-checks the operator's password.
type Reauthenticator interface {
	Reauthenticate(ctx context.Context, userID, password string) (*models.User, error)
}

type WipeResult struct {
	Deleted map[string]int `json:"deleted"`
}

// Wipe erases every booking, barber, service and plan. Chunks are
// committed one after the other; a failure midway leaves the earlier
// chunks deleted and reports the error.
type Wipe struct {
	repo    domain.Repository
	auth    Reauthenticator
	cache   cache.Cache
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewWipe(
	repo domain.Repository,
	auth Reauthenticator,
	c cache.Cache,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log *logger.Logger,
) *Wipe {
	if log == nil {
		log = logger.Discard()
	}
	return &Wipe{repo: repo, auth: auth, cache: c, audit: audit, metrics: m, log: log}
}

func (uc *Wipe) Execute(
	ctx context.Context,
	userID string,
	password string,
	confirmation string,
) (*WipeResult, error) {

	// --------------------------------------------------
	// 1️⃣ Reautenticação + frase de segurança
	// --------------------------------------------------
	if _, err := uc.auth.Reauthenticate(ctx, userID, password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(confirmation) != ConfirmationPhrase {
		return nil, httperr.ErrBusiness(httperr.CodeConfirmationText)
	}

	res := &WipeResult{Deleted: make(map[string]int, len(domain.Collections))}

	// --------------------------------------------------
	// 2️⃣ Exclusão em lotes, sequencial
	// --------------------------------------------------
	defer uc.flush(ctx)

	for _, table := range domain.Collections {
		ids, err := uc.repo.ListIDs(ctx, table)
		if err != nil {
			return res, err
		}

		for _, chunk := range domain.ChunkIDs(ids, domain.ChunkSize) {
			if err := uc.repo.DeleteIDs(ctx, table, chunk); err != nil {
				uc.log.Error("wipe chunk failed", "table", table, "deleted", res.Deleted[table], "error", err)
				return res, err
			}
			res.Deleted[table] += len(chunk)
			uc.metrics.Wiped(table, len(chunk))
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "system_wiped",
		Entity:   "system",
		Metadata: res.Deleted,
	})
	uc.log.Warn("system wiped", "user_id", userID, "deleted", res.Deleted)

	return res, nil
}

func (uc *Wipe) flush(ctx context.Context) {
	if err := uc.cache.DeletePrefix(ctx, cache.PrefixData); err != nil {
		uc.log.Warn("cache flush after wipe failed", "error", err)
	}
}
