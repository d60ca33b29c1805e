//go:generate mockgen -source=../upstream_caller.go     -destination=./mock_upstream_caller.go     -package=mocks
//go:generate mockgen -source=../reference_cache.go     -destination=./mock_reference_cache.go     -package=mocks
//go:generate mockgen -source=../call_log_repository.go -destination=./mock_call_log_repository.go -package=mocks
//go:generate mockgen -source=../services.go            -destination=./mock_services.go            -package=mocks
//go:generate mockgen -source=../authorizer.go          -destination=./mock_authorizer.go          -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks

package mocks
