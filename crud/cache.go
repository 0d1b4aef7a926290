package crud

import (
	"strings"
	"time"

	"folio/logger"
	"folio/rdx"

	"go.uber.org/zap"
)

const listCacheTTL = 2 * time.Minute

// Cache failures are soft: a dead redis never takes a request down.

func (d Descriptor) cacheKey() string {
	return "folio:list:" + strings.ToLower(d.Name)
}

func (d Descriptor) cachedList() ([]byte, bool) {
	raw, err := rdx.RdxGet(d.cacheKey())
	if err != nil || raw == "" {
		return nil, false
	}
	return []byte(raw), true
}

func (d Descriptor) storeList(body []byte) {
	if err := rdx.SetWithExpiry(d.cacheKey(), string(body), listCacheTTL); err != nil {
		logger.Log.Debug("list cache store failed", zap.String("entity", d.Name), zap.Error(err))
	}
}

func (d Descriptor) invalidateList() {
	if _, err := rdx.RdxDel(d.cacheKey()); err != nil {
		logger.Log.Debug("list cache invalidation failed", zap.String("entity", d.Name), zap.Error(err))
	}
}
