package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	customersvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/service"
	pointsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
)

// ReconcilePointsWorker worker đối soát điểm: định kỳ replay sổ cái của từng
// khách hàng (floor tại 0 sau mỗi bút toán) và vá chênh lệch với total_points.
// Chênh lệch phát sinh khi cập nhật số dư thành công nhưng ghi bút toán hoặc
// xóa bút toán gặp lỗi. Replay dùng cùng quy tắc floor với IncrementWithFloor
// nên lần trừ bị clamp không tạo chênh lệch giả.
type ReconcilePointsWorker struct {
	pointService    *pointsvc.PointService
	customerService *customersvc.CustomerService
	cronSpec        string // Lịch chạy (cron spec, vd: "@every 10m")
	scheduler       *cron.Cron
}

// NewReconcilePointsWorker tạo mới ReconcilePointsWorker.
// Tham số:
//   - cronSpec: Lịch chạy theo cú pháp robfig/cron (mặc định: "@every 10m")
func NewReconcilePointsWorker(cronSpec string) (*ReconcilePointsWorker, error) {
	pointService, err := pointsvc.NewPointService()
	if err != nil {
		return nil, err
	}
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, err
	}
	if cronSpec == "" {
		cronSpec = "@every 10m"
	}
	return &ReconcilePointsWorker{
		pointService:    pointService,
		customerService: customerService,
		cronSpec:        cronSpec,
	}, nil
}

// Start đăng ký job đối soát theo lịch và chạy scheduler nền.
// Gọi Stop để dừng scheduler khi shutdown.
func (w *ReconcilePointsWorker) Start(ctx context.Context) error {
	log := logger.GetAppLogger()

	w.scheduler = cron.New()
	_, err := w.scheduler.AddFunc(w.cronSpec, func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("💰 [RECONCILE] Panic khi đối soát điểm, sẽ tiếp tục ở lần chạy tiếp theo")
			}
		}()
		w.reconcileAll(ctx)
	})
	if err != nil {
		return err
	}

	w.scheduler.Start()
	log.WithFields(map[string]interface{}{
		"cron": w.cronSpec,
	}).Info("💰 [RECONCILE] Starting Reconcile Points Worker...")
	return nil
}

// Stop dừng scheduler, chờ job đang chạy kết thúc
func (w *ReconcilePointsWorker) Stop() {
	if w.scheduler != nil {
		<-w.scheduler.Stop().Done()
		logger.GetAppLogger().Info("💰 [RECONCILE] Reconcile Points Worker stopped")
	}
}

// reconcileAll duyệt toàn bộ khách hàng, so số dư replay từ sổ cái với total_points và vá lệch.
// Mỗi lần vá đều được log để truy vết biến động ngoài luồng earn/deduct.
func (w *ReconcilePointsWorker) reconcileAll(ctx context.Context) {
	log := logger.GetAppLogger()

	customers, err := w.customerService.Find(ctx, map[string]interface{}{}, nil)
	if err != nil {
		log.WithError(err).Error("💰 [RECONCILE] Lỗi lấy danh sách khách hàng")
		return
	}

	repaired := 0
	for _, customer := range customers {
		if err := w.reconcileCustomer(ctx, customer, &repaired); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"customerId": customer.ID.Hex(),
			}).Warn("💰 [RECONCILE] Lỗi đối soát khách hàng, bỏ qua")
		}
	}

	if repaired > 0 {
		log.WithFields(map[string]interface{}{
			"repaired": repaired,
			"total":    len(customers),
		}).Info("💰 [RECONCILE] Đã vá chênh lệch điểm")
	}
}

// reconcileCustomer replay sổ cái của một khách, so với số dư cache, vá nếu lệch
func (w *ReconcilePointsWorker) reconcileCustomer(ctx context.Context, customer customermodels.Customer, repaired *int) error {
	replayed, err := w.pointService.ReplayBalance(ctx, customer.ID)
	if err != nil {
		return err
	}

	if customer.TotalPoints == replayed {
		return nil
	}

	if _, err := w.pointService.RecomputeBalance(ctx, customer.ID); err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"customerId": customer.ID.Hex(),
		"cached":     customer.TotalPoints,
		"replayed":   replayed,
	}).Warn("💰 [RECONCILE] Số dư lệch với sổ cái, đã tính lại")
	*repaired++
	return nil
}
