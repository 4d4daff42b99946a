package grpc

// proto.go defines the gRPC server interface derived from
// agrocredito/credit/v1/credit.proto. This file serves as a stand-in for
// buf-generated code; messages travel over the JSON codec registered in
// json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/agrocredito/agrocredito/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

type (
	SimulateCreditRequest  = dto.SimulateCreditRequest
	SimulateCreditResponse = dto.SimulationQuoteResponse

	SaveSimulationRequest  = dto.SaveSimulationRequest
	SaveSimulationResponse = dto.SimulationResponse

	GetSimulationRequest  = dto.GetSimulationRequest
	GetSimulationResponse = dto.SimulationResponse

	DeleteSimulationRequest = dto.DeleteSimulationRequest

	RegisterFarmerRequest  = dto.RegisterFarmerRequest
	RegisterFarmerResponse = dto.FarmerResponse

	SubmitApplicationRequest  = dto.SubmitApplicationRequest
	SubmitApplicationResponse = dto.ApplicationResponse

	DecideApplicationRequest  = dto.DecideApplicationRequest
	DecideApplicationResponse = dto.DecisionResponse

	SettleCreditRequest  = dto.GetSimulationRequest
	SettleCreditResponse = dto.SimulationResponse

	PortfolioSummaryResponse = dto.PortfolioSummaryResponse
)

// ListSimulationsRequest narrows the simulation listing.
type ListSimulationsRequest struct {
	FarmerID string `json:"farmer_id,omitempty"`
}

// ListSimulationsResponse carries the matching simulations.
type ListSimulationsResponse struct {
	Simulations []dto.SimulationResponse `json:"simulations"`
}

// DeleteSimulationResponse acknowledges a deletion.
type DeleteSimulationResponse struct {
	Deleted bool `json:"deleted"`
}

// ListFarmersRequest lists every registered farmer.
type ListFarmersRequest struct{}

// ListFarmersResponse carries the farmer profiles.
type ListFarmersResponse struct {
	Farmers []dto.FarmerResponse `json:"farmers"`
}

// ListApplicationsRequest narrows the application listing.
type ListApplicationsRequest struct {
	FarmerID string `json:"farmer_id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ListApplicationsResponse carries the matching applications.
type ListApplicationsResponse struct {
	Applications []dto.ApplicationResponse `json:"applications"`
}

// PortfolioSummaryRequest asks for the portfolio headline figures.
type PortfolioSummaryRequest struct{}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// CreditServiceServer is the server API for CreditService.
type CreditServiceServer interface {
	SimulateCredit(context.Context, *SimulateCreditRequest) (*SimulateCreditResponse, error)
	SaveSimulation(context.Context, *SaveSimulationRequest) (*SaveSimulationResponse, error)
	GetSimulation(context.Context, *GetSimulationRequest) (*GetSimulationResponse, error)
	ListSimulations(context.Context, *ListSimulationsRequest) (*ListSimulationsResponse, error)
	DeleteSimulation(context.Context, *DeleteSimulationRequest) (*DeleteSimulationResponse, error)
	RegisterFarmer(context.Context, *RegisterFarmerRequest) (*RegisterFarmerResponse, error)
	ListFarmers(context.Context, *ListFarmersRequest) (*ListFarmersResponse, error)
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error)
	SettleCredit(context.Context, *SettleCreditRequest) (*SettleCreditResponse, error)
	GetPortfolioSummary(context.Context, *PortfolioSummaryRequest) (*PortfolioSummaryResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) SimulateCredit(context.Context, *SimulateCreditRequest) (*SimulateCreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateCredit not implemented")
}
func (UnimplementedCreditServiceServer) SaveSimulation(context.Context, *SaveSimulationRequest) (*SaveSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveSimulation not implemented")
}
func (UnimplementedCreditServiceServer) GetSimulation(context.Context, *GetSimulationRequest) (*GetSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSimulation not implemented")
}
func (UnimplementedCreditServiceServer) ListSimulations(context.Context, *ListSimulationsRequest) (*ListSimulationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSimulations not implemented")
}
func (UnimplementedCreditServiceServer) DeleteSimulation(context.Context, *DeleteSimulationRequest) (*DeleteSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSimulation not implemented")
}
func (UnimplementedCreditServiceServer) RegisterFarmer(context.Context, *RegisterFarmerRequest) (*RegisterFarmerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterFarmer not implemented")
}
func (UnimplementedCreditServiceServer) ListFarmers(context.Context, *ListFarmersRequest) (*ListFarmersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFarmers not implemented")
}
func (UnimplementedCreditServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedCreditServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedCreditServiceServer) DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideApplication not implemented")
}
func (UnimplementedCreditServiceServer) SettleCredit(context.Context, *SettleCreditRequest) (*SettleCreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SettleCredit not implemented")
}
func (UnimplementedCreditServiceServer) GetPortfolioSummary(context.Context, *PortfolioSummaryRequest) (*PortfolioSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPortfolioSummary not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "agrocredito.credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SimulateCredit", Handler: _CreditService_SimulateCredit_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "SaveSimulation", Handler: _CreditService_SaveSimulation_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetSimulation", Handler: _CreditService_GetSimulation_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ListSimulations", Handler: _CreditService_ListSimulations_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "DeleteSimulation", Handler: _CreditService_DeleteSimulation_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "RegisterFarmer", Handler: _CreditService_RegisterFarmer_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListFarmers", Handler: _CreditService_ListFarmers_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "SubmitApplication", Handler: _CreditService_SubmitApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "ListApplications", Handler: _CreditService_ListApplications_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "DecideApplication", Handler: _CreditService_DecideApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "SettleCredit", Handler: _CreditService_SettleCredit_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GetPortfolioSummary", Handler: _CreditService_GetPortfolioSummary_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SimulateCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SimulateCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/SimulateCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SimulateCredit(ctx, req.(*SimulateCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SaveSimulation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveSimulationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SaveSimulation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/SaveSimulation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SaveSimulation(ctx, req.(*SaveSimulationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetSimulation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSimulationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetSimulation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/GetSimulation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetSimulation(ctx, req.(*GetSimulationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ListSimulations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSimulationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ListSimulations(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/ListSimulations",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ListSimulations(ctx, req.(*ListSimulationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_DeleteSimulation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSimulationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).DeleteSimulation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/DeleteSimulation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).DeleteSimulation(ctx, req.(*DeleteSimulationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RegisterFarmer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterFarmerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RegisterFarmer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/RegisterFarmer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RegisterFarmer(ctx, req.(*RegisterFarmerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ListFarmers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFarmersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ListFarmers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/ListFarmers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ListFarmers(ctx, req.(*ListFarmersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ListApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_DecideApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).DecideApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/DecideApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).DecideApplication(ctx, req.(*DecideApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SettleCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SettleCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SettleCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/SettleCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SettleCredit(ctx, req.(*SettleCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetPortfolioSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PortfolioSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetPortfolioSummary(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agrocredito.credit.v1.CreditService/GetPortfolioSummary",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetPortfolioSummary(ctx, req.(*PortfolioSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}
