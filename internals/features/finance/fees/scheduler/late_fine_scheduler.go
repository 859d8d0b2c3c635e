package scheduler

import (
	"context"
	"log"
	"time"

	"schoolku_backend/internals/configs"
	feeService "schoolku_backend/internals/features/finance/fees/service"
)

// runInterval membaca jeda antar run dari env LATE_FINE_INTERVAL_HOURS
// (default 24 jam).
func runInterval() time.Duration {
	return time.Duration(configs.GetEnvInt("LATE_FINE_INTERVAL_HOURS", 24)) * time.Hour
}

// StartLateFineScheduler menjalankan job denda secara periodik lintas
// semua sekolah (scope nil). Guard single-flight ada di service:
// trigger yang tumpang tindih = no-op.
func StartLateFineScheduler(svc *feeService.FeeService) {
	go func() {
		interval := runInterval()

		for {
			log.Println("[LATE-FINE] Menjalankan pengecekan denda keterlambatan...")

			summary, err := svc.ApplyLateFines(context.Background(), nil)
			if err != nil {
				log.Printf("[LATE-FINE ERROR] run gagal: %v", err)
			} else if summary.AlreadyRunning {
				log.Println("[LATE-FINE] Run sebelumnya masih berjalan, skip")
			} else {
				log.Printf("[LATE-FINE] %d record didenda, %d gagal",
					summary.RecordsFined, len(summary.FailedRecordIDs))
			}

			time.Sleep(interval)
		}
	}()
}
