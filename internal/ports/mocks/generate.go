//go:generate mockgen -source=../remote_cache.go    -destination=./mock_remote_cache.go    -package=mocks
//go:generate mockgen -source=../cart_codec.go      -destination=./mock_cart_codec.go      -package=mocks
//go:generate mockgen -source=../fallback_cache.go  -destination=./mock_fallback_cache.go  -package=mocks
//go:generate mockgen -source=../cart_store.go      -destination=./mock_cart_store.go      -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks

package mocks
