//go:generate protoc -I ../../../../api/proto --go_out=../../../.. --go_opt=module=adminpanel --go-grpc_out=../../../.. --go-grpc_opt=module=adminpanel orders/v1/orders.proto
package orders
