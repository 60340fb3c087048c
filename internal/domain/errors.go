package domain

import "errors"

// 서비스 전반에서 사용하는 오류 분류.
// 핸들러는 errors.Is 로 분기해서 응답 메시지를 결정한다.
var (
	ErrNotFound               = errors.New("대상을 찾을 수 없습니다")
	ErrForbidden              = errors.New("권한이 없습니다")
	ErrIllegalStateTransition = errors.New("현재 상태에서는 수행할 수 없는 작업입니다")
	ErrInvalidInput           = errors.New("요청 형식이 올바르지 않습니다")
	ErrConflict               = errors.New("근무 배정이 요청 생성 이후 변경되었습니다")
)
