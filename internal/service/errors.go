package service

import (
	"context"
	"errors"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
)

func internalError(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}

// storageConflict は再実行しても解消しなかった競合をクライアント向けの 409 にする
func storageConflict(err error) error {
	return model.NewAppError("STORAGE_CONFLICT", "他の更新と競合しました。再度お試しください。", "", err)
}

// retryOnStorageConflict は upsert が競合で失敗したときに1回だけ再実行する
func retryOnStorageConflict(ctx context.Context, op string, fn func() error) error {
	err := fn()
	if errors.Is(err, model.ErrStorageConflict) {
		middleware.GetLogger(ctx).Warn("Storage conflict, retrying once", "op", op)
		err = fn()
	}
	return err
}
