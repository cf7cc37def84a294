package model

type (
	// IDPath 路径中的资源 id
	IDPath struct {
		ID uint `path:"id,required"`
	}

	Message struct {
		Message string `json:"message"`
	}

	ErrorDetail struct {
		Detail string `json:"detail"`
	}
)
