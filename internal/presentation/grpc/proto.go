package grpc

// proto.go defines the gRPC server interface derived from
// academix/ledger/v1/ledger.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/academix/api/gen/go/academix/ledger/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// LineMsg mirrors academix.ledger.v1.Line.
type LineMsg struct {
	AccountID    string
	Debit        string
	Credit       string
	CostCenterID string
	Description  string
}

// DocumentMsg mirrors academix.ledger.v1.Document.
type DocumentMsg struct {
	ID          string
	TenantID    string
	Kind        string
	Reference   string
	DocDate     string
	Description string
	Status      string
	BranchID    string
	Lines       []*LineMsg
	CreatedBy   string
	PostedBy    string
	PostedAt    *timestamppb.Timestamp
	VoidedBy    string
	VoidedAt    *timestamppb.Timestamp
	VoidReason  string
	Version     int32
	CreatedAt   *timestamppb.Timestamp
	UpdatedAt   *timestamppb.Timestamp
}

type CreateDocumentRequest struct {
	Kind        string
	Reference   string
	DocDate     string
	Description string
	BranchID    string
	Lines       []*LineMsg
}

type CreateDocumentResponse struct {
	Document *DocumentMsg
}

type UpdateDocumentLinesRequest struct {
	DocumentID string
	Lines      []*LineMsg
}

type UpdateDocumentLinesResponse struct {
	Document *DocumentMsg
}

type PostDocumentRequest struct {
	DocumentID string
}

type PostDocumentResponse struct {
	Document *DocumentMsg
}

type VoidDocumentRequest struct {
	DocumentID string
	Reason     string
}

type VoidDocumentResponse struct {
	Document *DocumentMsg
}

type DeleteDocumentRequest struct {
	DocumentID string
}

type DeleteDocumentResponse struct{}

type GetDocumentRequest struct {
	DocumentID string
}

type GetDocumentResponse struct {
	Document *DocumentMsg
}

type ListDocumentsRequest struct {
	From   string
	To     string
	Limit  int32
	Offset int32
}

type ListDocumentsResponse struct {
	Documents []*DocumentMsg
	Total     int32
}

type GetBalanceRequest struct {
	AccountID string
	AsOf      string
	BranchID  string
}

type GetBalanceResponse struct {
	AccountID     string
	AccountCode   string
	NormalBalance string
	Balance       string
	AsOf          string
}

type GetChartOfAccountsRequest struct{}

type AccountMsg struct {
	ID             string
	Code           string
	Name           string
	Type           string
	NormalBalance  string
	ParentID       string
	ChildIDs       []string
	OpeningBalance string
	BranchID       string
	IsActive       bool
}

type GetChartOfAccountsResponse struct {
	Accounts []*AccountMsg
}

type ClosePeriodRequest struct {
	Year  int32
	Month int32
}

type ClosePeriodResponse struct{}

// LedgerServiceServer is the server API for LedgerService.
// It mirrors the proto-generated interface from academix.ledger.v1.LedgerService.
type LedgerServiceServer interface {
	CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error)
	UpdateDocumentLines(context.Context, *UpdateDocumentLinesRequest) (*UpdateDocumentLinesResponse, error)
	PostDocument(context.Context, *PostDocumentRequest) (*PostDocumentResponse, error)
	VoidDocument(context.Context, *VoidDocumentRequest) (*VoidDocumentResponse, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	GetChartOfAccounts(context.Context, *GetChartOfAccountsRequest) (*GetChartOfAccountsResponse, error)
	ClosePeriod(context.Context, *ClosePeriodRequest) (*ClosePeriodResponse, error)
	mustEmbedUnimplementedLedgerServiceServer()
}

// UnimplementedLedgerServiceServer provides forward-compatible default implementations.
type UnimplementedLedgerServiceServer struct{}

func (UnimplementedLedgerServiceServer) CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateDocument not implemented")
}
func (UnimplementedLedgerServiceServer) UpdateDocumentLines(context.Context, *UpdateDocumentLinesRequest) (*UpdateDocumentLinesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateDocumentLines not implemented")
}
func (UnimplementedLedgerServiceServer) PostDocument(context.Context, *PostDocumentRequest) (*PostDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostDocument not implemented")
}
func (UnimplementedLedgerServiceServer) VoidDocument(context.Context, *VoidDocumentRequest) (*VoidDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VoidDocument not implemented")
}
func (UnimplementedLedgerServiceServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedLedgerServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedLedgerServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedLedgerServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedLedgerServiceServer) GetChartOfAccounts(context.Context, *GetChartOfAccountsRequest) (*GetChartOfAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChartOfAccounts not implemented")
}
func (UnimplementedLedgerServiceServer) ClosePeriod(context.Context, *ClosePeriodRequest) (*ClosePeriodResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClosePeriod not implemented")
}
func (UnimplementedLedgerServiceServer) mustEmbedUnimplementedLedgerServiceServer() {}

// RegisterLedgerServiceServer registers the LedgerServiceServer with the gRPC server.
func RegisterLedgerServiceServer(s *grpclib.Server, srv LedgerServiceServer) {
	s.RegisterService(&_LedgerService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LedgerService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "academix.ledger.v1.LedgerService",
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateDocument", Handler: _LedgerService_CreateDocument_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "UpdateDocumentLines", Handler: _LedgerService_UpdateDocumentLines_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "PostDocument", Handler: _LedgerService_PostDocument_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "VoidDocument", Handler: _LedgerService_VoidDocument_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "DeleteDocument", Handler: _LedgerService_DeleteDocument_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetDocument", Handler: _LedgerService_GetDocument_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ListDocuments", Handler: _LedgerService_ListDocuments_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetBalance", Handler: _LedgerService_GetBalance_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "GetChartOfAccounts", Handler: _LedgerService_GetChartOfAccounts_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "ClosePeriod", Handler: _LedgerService_ClosePeriod_Handler},                 //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_CreateDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).CreateDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/CreateDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).CreateDocument(ctx, req.(*CreateDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_UpdateDocumentLines_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDocumentLinesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).UpdateDocumentLines(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/UpdateDocumentLines",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).UpdateDocumentLines(ctx, req.(*UpdateDocumentLinesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_PostDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PostDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).PostDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/PostDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).PostDocument(ctx, req.(*PostDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_VoidDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(VoidDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).VoidDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/VoidDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).VoidDocument(ctx, req.(*VoidDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_DeleteDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).DeleteDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/DeleteDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).DeleteDocument(ctx, req.(*DeleteDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).GetDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/GetDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ListDocuments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/ListDocuments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).GetBalance(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/GetBalance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_GetChartOfAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChartOfAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).GetChartOfAccounts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/GetChartOfAccounts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).GetChartOfAccounts(ctx, req.(*GetChartOfAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LedgerService_ClosePeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClosePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ClosePeriod(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/academix.ledger.v1.LedgerService/ClosePeriod",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ClosePeriod(ctx, req.(*ClosePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}
