//go:generate mockgen -source=../cart_store.go        -destination=./mock_cart_store.go        -package=mocks
//go:generate mockgen -source=../cart_cache.go        -destination=./mock_cart_cache.go        -package=mocks
//go:generate mockgen -source=../cart_repository.go   -destination=./mock_cart_repository.go   -package=mocks
//go:generate mockgen -source=../checkout_provider.go -destination=./mock_checkout_provider.go -package=mocks
//go:generate mockgen -source=../party_service.go     -destination=./mock_party_service.go     -package=mocks
//go:generate mockgen -source=../profile_store.go     -destination=./mock_profile_store.go     -package=mocks
//go:generate mockgen -source=../storefront_api.go    -destination=./mock_storefront_api.go    -package=mocks

package mocks
